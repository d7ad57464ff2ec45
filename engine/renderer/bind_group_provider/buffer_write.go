package bind_group_provider

// BufferWrite is a pending queue write into one of a provider's bound buffers.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

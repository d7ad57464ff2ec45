package shader

import _ "embed"

// InstancedVertexSource is the vertex stage for instanced meshes. It reads the per-vertex
// VertexInput and per-instance InstanceInput structs and the camera uniform at group 0 binding 0.
//
//go:embed assets/instanced.wgsl
var InstancedVertexSource string

// FlatFragmentSource is the fragment stage that outputs the interpolated instance color.
//
//go:embed assets/flat.wgsl
var FlatFragmentSource string

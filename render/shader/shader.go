package shader

import (
	"github.com/Nub/screenfx/effect"
	"github.com/cogentcore/webgpu/wgpu"
)

// Bind group indices shared by every effect pipeline. Group 0 carries the
// ping-pong source texture and sampler; group 1 carries the effect's uniform
// buffer. The layouts are fixed — effect shaders are full-screen passes with
// no vertex buffers and no other resources.
const (
	// GroupScreenTexture is the bind group index of the screen texture + sampler.
	GroupScreenTexture = 0

	// GroupUniforms is the bind group index of the per-effect uniform buffer.
	GroupUniforms = 1

	// BindingTexture and BindingSampler are the bindings within GroupScreenTexture.
	BindingTexture = 0
	BindingSampler = 1

	// BindingUniformBuffer is the binding within GroupUniforms.
	BindingUniformBuffer = 0
)

// shader is the implementation of the Shader interface. It holds the
// preprocessed WGSL module source and the statically-declared bind group
// layout descriptors for one effect variant.
type shader struct {
	key                        string
	source                     string
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
}

// Shader defines the interface for a loaded effect shader module. It exposes
// the module's unique key, WGSL source (with variant flags already applied),
// entry points, and the bind group layout descriptors needed for pipeline
// creation. Every effect module contains both the shared full-screen-triangle
// vertex entry point and the effect's fragment entry point.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching
	// and GPU debug labels.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL module source with variant specialization
	// applied.
	//
	// Returns:
	//   - string: the WGSL source code of the module
	Source() string

	// VertexEntryPoint returns the vertex entry point name.
	//
	// Returns:
	//   - string: always "vertex" for effect modules
	VertexEntryPoint() string

	// FragmentEntryPoint returns the fragment entry point name.
	//
	// Returns:
	//   - string: always "fragment" for effect modules
	FragmentEntryPoint() string

	// BindGroupLayoutDescriptor retrieves the layout descriptor for a
	// specific group index.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the descriptor for the group, or an empty descriptor if not set
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptors retrieves all layout descriptors keyed by
	// group index. These are CPU-side descriptors the renderer uses to create
	// the actual wgpu.BindGroupLayout GPU objects.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor
}

// Compile-time check that shader implements Shader.
var _ Shader = &shader{}

// ForEffect builds the Shader for one effect variant: the shared full-screen
// vertex source is prepended to the effect's fragment source, variant flags
// are applied as compile-time constants, and the fixed screen-texture and
// uniform layouts are declared with the effect's exact uniform size.
//
// Parameters:
//   - t: the effect type whose module to build
//   - flags: the shader specialization flags to bake in
//   - uniformSize: the byte size of the effect's uniform struct, used as MinBindingSize
//
// Returns:
//   - Shader: the assembled shader for the (type, flags) variant
func ForEffect(t effect.Type, flags effect.VariantFlags, uniformSize uint64) Shader {
	return &shader{
		key:    variantKey(t, flags),
		source: fullscreenVertexSource + "\n" + applyVariants(fragmentSource(t), flags),
		bindGroupLayoutDescriptors: map[int]wgpu.BindGroupLayoutDescriptor{
			GroupScreenTexture: screenTextureLayout(),
			GroupUniforms:      uniformLayout(t, uniformSize),
		},
	}
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) VertexEntryPoint() string {
	return "vertex"
}

func (s *shader) FragmentEntryPoint() string {
	return "fragment"
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

// ScreenTextureLayoutDescriptor returns the group 0 layout shared by all
// effect pipelines. The renderer backend creates one wgpu.BindGroupLayout
// from it and reuses that layout for every per-pass source texture bind group.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the screen texture + sampler layout
func ScreenTextureLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return screenTextureLayout()
}

// screenTextureLayout is the group 0 layout shared by all effect pipelines:
// the ping-pong source texture and a filtering sampler.
func screenTextureLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "screenfx_texture_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    BindingTexture,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
					Multisampled:  false,
				},
			},
			{
				Binding:    BindingSampler,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

// UniformLayoutDescriptor returns the group 1 layout for one effect type: a
// single uniform buffer sized exactly to the type's GPU struct. The preparer
// uses it to allocate per-instance uniform slots without building a full
// shader.
//
// Parameters:
//   - t: the effect type
//   - uniformSize: the byte size of the effect's uniform struct
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the uniform buffer layout
func UniformLayoutDescriptor(t effect.Type, uniformSize uint64) wgpu.BindGroupLayoutDescriptor {
	return uniformLayout(t, uniformSize)
}

// uniformLayout is the group 1 layout for one effect type: a single uniform
// buffer sized exactly to the type's GPU struct.
func uniformLayout(t effect.Type, uniformSize uint64) wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: t.String() + "_uniform_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    BindingUniformBuffer,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uniformSize,
				},
			},
		},
	}
}

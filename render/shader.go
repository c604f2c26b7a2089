package render

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// presentShaderWGSL is the fullscreen blit used when compositing a texture
// target into the host surface.
const presentShaderWGSL = `
@group(0) @binding(0) var src: texture_2d<f32>;
@group(0) @binding(1) var smp: sampler;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    // Fullscreen triangle
    var out: VertexOutput;
    let x = f32(i32(index) - 1);
    let y = f32(i32(index & 1u) * 2 - 1);
    out.position = vec4<f32>(x * 3.0, y * 3.0, 0.0, 1.0);
    out.uv = vec2<f32>(out.position.x, -out.position.y) * 0.5 + 0.5;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(src, smp, in.uv);
}
`

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("render: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// presentShaderModule lazily compiles the present shader and creates its
// HAL module. Called from MakeCurrent on contexts with device access.
func (c *Context) presentShaderModule() (hal.ShaderModule, error) {
	if c.presentShader != nil {
		return c.presentShader, nil
	}
	if c.device == nil {
		return nil, ErrNoDevice
	}

	spirv, err := CompileShaderToSPIRV(presentShaderWGSL)
	if err != nil {
		return nil, err
	}

	module, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "motion-present",
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: create shader module: %w", err)
	}

	c.presentShader = module
	return module, nil
}

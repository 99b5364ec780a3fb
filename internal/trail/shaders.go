package trail

// Trail vertex shader: world-space position transformed by the projection.
const trailVertSrc = `#version 410 core

uniform mat4 transform;

layout(location = 0) in vec4 vertex;
layout(location = 1) in vec4 color;

out vec4 vColor;

void main() {
    gl_Position = transform * vertex;
    vColor = color;
}
` + "\x00"

// Trail fragment shader: flat per-vertex color.
const trailFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

package graphics

// MaxObjects bounds the position and color arrays the shaders see.
// The channel knob range matches it, so every selectable channel can
// address a slot.
const MaxObjects = 16

// Scene pass. Vertices arrive interleaved as position, normal, color
// with the geometry package's 40 byte stride.
const sceneVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aColor;

uniform mat4 World;
uniform mat4 View;
uniform mat4 Projection;

out vec3 vWorldPos;
out vec3 vNormal;
out vec4 vColor;

void main() {
    vec4 world = World * vec4(aPos, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(World) * aNormal;
    vColor = aColor;
    gl_Position = Projection * View * world;
}
`

// Fragment lighting: a hemisphere ambient term, a key light hung above
// the channel-selected object, and a distance-attenuated color bleed
// from every other object in the batch. num_processed is the index of
// the object being drawn, -1 for the ground, which samples the floor
// texture planar in XZ instead of its vertex color.
const sceneFragmentSrc = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec4 vColor;

out vec4 FragColor;

uniform vec4 BigBalls[16];
uniform vec4 OColors[16];
uniform int num_processed;
uniform int count_processed;
uniform int ColorNumVar;
uniform float brightness;
uniform float reflectance;
uniform float skybright;
uniform float diffuseStr;
uniform float gamma;
uniform vec3 CamEye;
uniform sampler2D FloorTexture;

void main() {
    vec3 n = normalize(vNormal);

    vec3 base = vColor.rgb;
    if (num_processed == -1) {
        base = texture(FloorTexture, vWorldPos.xz * 0.1).rgb;
    }

    vec3 lit = base * skybright * (0.4 + 0.6 * max(n.y, 0.0)) * 0.35;

    vec3 keyDir = vec3(0.0, 1.0, 0.0);
    vec3 keyColor = vec3(1.0);
    if (ColorNumVar >= 0 && ColorNumVar < count_processed) {
        vec3 keyPos = BigBalls[ColorNumVar].xyz + vec3(0.0, 4.0, 0.0);
        keyDir = normalize(keyPos - vWorldPos);
        keyColor = mix(vec3(1.0), OColors[ColorNumVar].rgb, 0.5);
    }
    lit += base * keyColor * diffuseStr * 0.5 * max(dot(n, keyDir), 0.0);

    for (int i = 0; i < count_processed; i++) {
        if (i == num_processed) {
            continue;
        }
        vec3 toBall = BigBalls[i].xyz - vWorldPos;
        float dist2 = max(dot(toBall, toBall), 1.0);
        float glow = diffuseStr * max(dot(n, normalize(toBall)), 0.0) / dist2;
        lit += base * OColors[i].rgb * glow;
    }

    vec3 toEye = normalize(CamEye - vWorldPos);
    float rim = pow(1.0 - max(dot(n, toEye), 0.0), max(reflectance, 0.1));
    lit += base * 0.25 * rim;

    lit *= brightness;
    lit = pow(max(lit, vec3(0.0)), vec3(1.0 / max(gamma, 0.1)));
    FragColor = vec4(lit, vColor.a);
}
`

// Text pass for the overlay. Quads arrive as xy position in screen
// pixels and zw atlas coordinates.
const fontVertexSrc = `
#version 410 core

layout (location = 0) in vec4 aVertex;

uniform mat4 projection;

out vec2 vTexCoord;

void main() {
    vTexCoord = aVertex.zw;
    gl_Position = projection * vec4(aVertex.xy, 0.0, 1.0);
}
`

const fontFragmentSrc = `
#version 410 core

in vec2 vTexCoord;

out vec4 FragColor;

uniform sampler2D text;
uniform vec3 textColor;

void main() {
    float alpha = texture(text, vTexCoord).r;
    FragColor = vec4(textColor, alpha);
}
`

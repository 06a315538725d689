package meshrender

// Built-in shaders. The fragment stage applies every single-pass effect
// selected by uFXMask. Glow, Shadow and Bloom sample outside the fragment's
// own neighbourhood and are left to custom shaders.
const DefaultVertexSource = `
#version 330 core
layout(location=0) in vec3 aPos;
layout(location=1) in vec2 aUV;
layout(location=2) in vec4 aColor;
uniform mat4 uMVP;
out vec2 vUV;
out vec4 vColor;
void main() {
    vUV = aUV;
    vColor = aColor;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
` + "\x00"

const DefaultFragmentSource = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

uniform sampler2D uTex;
uniform int uFXMask;

struct Pixelate { float amount; };
struct Vignette { vec2 position; float radius; float strength; };
struct Shine { float speed; float lineWidth; float gradient; float reveal; float time; };
struct Gradient { vec4 color1; vec4 color2; float alpha; vec2 positionFrom; vec2 positionTo; float size; };
struct ColorMatrix { float matrix[20]; float alpha; };
struct Barrel { float amount; };
struct Wipe { float progress; float wipeWidth; int direction; int axis; float reveal; };
struct Blur { int quality; vec2 offset; float strength; vec4 color; int steps; };
struct Circle { float thickness; vec4 color; vec4 backgroundColor; float scale; float feather; };
struct Displacement { vec2 amount; sampler2D map; };

uniform Pixelate uPixelate;
uniform Vignette uVignette;
uniform Shine uShine;
uniform Gradient uGradient;
uniform ColorMatrix uColorMatrix;
uniform Barrel uBarrel;
uniform Wipe uWipe;
uniform Blur uBlur;
uniform Circle uCircle;
uniform Displacement uDisplacement;

const int kPixelate = 2;
const int kVignette = 3;
const int kShine = 4;
const int kBlur = 5;
const int kGradient = 6;
const int kColorMatrix = 8;
const int kCircle = 9;
const int kBarrel = 10;
const int kDisplacement = 11;
const int kWipe = 12;

bool on(int k) { return (uFXMask & (1 << k)) != 0; }

void main() {
    vec2 uv = vUV;
    vec2 size = vec2(textureSize(uTex, 0));

    if (on(kBarrel)) {
        vec2 c = fract(uv) - 0.5;
        float r = dot(c, c);
        uv = floor(uv) + 0.5 + c * (1.0 + uBarrel.amount * r);
    }
    if (on(kDisplacement)) {
        vec2 d = texture(uDisplacement.map, fract(vUV)).rg * 2.0 - 1.0;
        uv += d * uDisplacement.amount;
    }
    if (on(kPixelate) && uPixelate.amount > 0.0) {
        vec2 px = max(vec2(1.0), vec2(uPixelate.amount)) / size;
        uv = (floor(uv / px) + 0.5) * px;
    }

    vec4 col = texture(uTex, uv) * vColor;
    vec2 local = fract(vUV);

    if (on(kBlur) && uBlur.steps > 0) {
        int n = clamp(uBlur.steps * (uBlur.quality + 1), 1, 32);
        vec2 o = uBlur.offset / size;
        vec4 acc = vec4(0.0);
        for (int i = -n; i <= n; i++) {
            acc += texture(uTex, uv + o * float(i) / float(n));
        }
        vec4 b = acc / float(2 * n + 1) * vColor * uBlur.color;
        col = mix(col, b, clamp(uBlur.strength, 0.0, 1.0));
    }

    if (on(kColorMatrix)) {
        float m[20] = uColorMatrix.matrix;
        vec4 c = col;
        vec4 r = vec4(
            m[0]*c.r + m[1]*c.g + m[2]*c.b + m[3]*c.a + m[4],
            m[5]*c.r + m[6]*c.g + m[7]*c.b + m[8]*c.a + m[9],
            m[10]*c.r + m[11]*c.g + m[12]*c.b + m[13]*c.a + m[14],
            m[15]*c.r + m[16]*c.g + m[17]*c.b + m[18]*c.a + m[19]);
        col = mix(col, r, uColorMatrix.alpha);
    }
    if (on(kGradient)) {
        vec2 d = uGradient.positionTo - uGradient.positionFrom;
        float t = clamp(dot(local - uGradient.positionFrom, d) / max(dot(d, d), 1e-5), 0.0, 1.0);
        if (uGradient.size > 0.0) {
            t = floor(t * uGradient.size) / uGradient.size;
        }
        vec4 g = mix(uGradient.color1, uGradient.color2, t);
        col.rgb = mix(col.rgb, g.rgb, uGradient.alpha * g.a);
    }
    if (on(kCircle)) {
        float d = length(local - 0.5) * 2.0 / max(uCircle.scale, 1e-3);
        float t = uCircle.thickness / max(size.x, 1.0);
        float f = max(uCircle.feather, 1e-4);
        float edge = smoothstep(1.0 - t - f, 1.0 - t, d);
        float ring = edge * (1.0 - smoothstep(1.0, 1.0 + f, d));
        vec4 inside = mix(uCircle.backgroundColor, col, col.a);
        col = inside * (1.0 - edge) + uCircle.color * ring;
    }
    if (on(kShine)) {
        float p = fract(uShine.time);
        float d = abs((local.x + local.y) * 0.5 - p);
        float band = 1.0 - smoothstep(0.0, max(uShine.lineWidth, 1e-3), d);
        col.rgb += band * uShine.gradient * col.a;
    }
    if (on(kVignette)) {
        float d = distance(local, uVignette.position);
        float v = smoothstep(uVignette.radius, uVignette.radius - 0.25, d);
        col.rgb *= mix(1.0, v, uVignette.strength);
    }
    if (on(kWipe)) {
        float a = uWipe.axis == 1 ? local.y : local.x;
        if (uWipe.direction == 1) { a = 1.0 - a; }
        float w = smoothstep(uWipe.progress, uWipe.progress + max(uWipe.wipeWidth, 1e-3), a);
        col *= uWipe.reveal > 0.5 ? 1.0 - w : w;
    }

    FragColor = col;
}
` + "\x00"

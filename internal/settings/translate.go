package settings

import (
	"strconv"

	"github.com/mtpbwy/enginepatch/internal/patch"
)

// Section is the Engine.ini section every tweak lives in.
const Section = "SystemSettings"

var (
	potatoKeys = []string{
		"r.Streaming.MinMipForSplitRequest",
		"r.Streaming.HiddenPrimitiveScale",
		"r.Streaming.AmortizeCPUToGPUCopy",
		"r.Streaming.MaxNumTexturesToStreamPerFrame",
		"r.Streaming.NumStaticComponentsProcessedPerFrame",
		"r.Streaming.FramesForFullUpdate",
	}
	potatoValues = []string{"0", "0.5", "1", "2", "2", "1"}

	stutterFixKeys = []string{
		"s.ForceGCAfterLevelStreamedOut",
		"s.ContinuouslyIncrementalGCWhileLevelsPendingPurge",
		"r.ShaderPipelineCache.PrecompileBatchTime",
	}
)

// Translate maps a snapshot to the batch that makes Engine.ini reflect it.
// Every managed key is either set or removed, so applying the result of one
// snapshot fully undoes the effect of any earlier one.
func Translate(s ModSettings) patch.Batch {
	var b patch.Batch

	b = append(b,
		toggle("r.BloomQuality", s.DisableBloom),
		toggle("r.LensFlareQuality", s.DisableLensFlare),
		toggle("r.DepthOfFieldQuality", s.DisableDOF),
		toggle("r.PostProcessAAQuality", s.DisableAntiAliasing),
	)

	b = append(b, setUnless("r.Streaming.PoolSize", strconv.Itoa(s.PoolSizeMB), s.PoolSizeMB <= 0))

	for _, k := range stutterFixKeys {
		b = append(b, toggle(k, s.UseExperimentalStutterFix))
	}

	b = append(b,
		toggle("r.Fog", s.DisableFog),
		toggle("r.VolumetricFog", s.DisableFog),
	)

	sharpen := s.ToneMapperSharpening / 10
	b = append(b, setUnless("r.Tonemapper.Sharpen", strconv.Itoa(sharpen), sharpen < 1))

	view := float64(s.ViewDistance) / 100
	b = append(b, setUnless("r.ViewDistanceScale", strconv.FormatFloat(view, 'f', 2, 64), s.ViewDistance == 0))

	b = append(b, PotatoPreset(s.PotatoTextures)...)

	b = append(b,
		patch.Set(Section, "r.ScreenPercentage", strconv.Itoa(s.TAA.Resolution)),
		patch.Set(Section, "r.TemporalAA.Algorithm", boolDigit(s.TAA.Gen5)),
		patch.Set(Section, "r.TemporalAA.Upsampling", boolDigit(s.TAA.Upscaling)),
	)

	b = append(b, setUnless("r.Streaming.LimitPoolSizeToVRAM", "1", !s.EnablePoolSizeToVRAMLimit))

	return b
}

// PotatoPreset returns the low-texture streaming preset, or its removal.
func PotatoPreset(enabled bool) patch.Batch {
	b := make(patch.Batch, 0, len(potatoKeys))
	for i, k := range potatoKeys {
		if enabled {
			b = append(b, patch.Set(Section, k, potatoValues[i]))
		} else {
			b = append(b, patch.Remove(Section, k))
		}
	}
	return b
}

// ManagedKeys lists every key Translate may touch, in batch order.
func ManagedKeys() []string {
	b := Translate(Default())
	keys := make([]string, 0, len(b))
	for _, op := range b {
		keys = append(keys, op.Key)
	}
	return keys
}

// toggle writes key=0 when disabled is set and removes the key otherwise.
func toggle(key string, disabled bool) patch.Operation {
	if disabled {
		return patch.Set(Section, key, "0")
	}
	return patch.Remove(Section, key)
}

func setUnless(key, value string, remove bool) patch.Operation {
	if remove {
		return patch.Remove(Section, key)
	}
	return patch.Set(Section, key, value)
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

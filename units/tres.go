package units

import (
	"strings"
)

// TRES resource descriptors are comma-separated key=value (sometimes
// key:value) lists, e.g. "cpu=6,mem=16G,fs/disk=1234,gres/gpu:v100=2".
// Values may themselves be byte-size encoded.

// ExtractKeyed returns the numeric value following key in the descriptor.
// ok is false when the descriptor itself is absent; a present descriptor
// without the key yields (0, true).
func ExtractKeyed(descriptor, key string) (val float64, ok bool) {
	if descriptor == "" {
		return 0, false
	}
	for _, kv := range strings.Split(descriptor, ",") {
		rest, found := strings.CutPrefix(kv, key)
		if !found || rest == "" || (rest[0] != '=' && rest[0] != ':') {
			continue
		}
		return ParseBytes(rest[1:]), true
	}
	return 0, true
}

// ExtractGPU returns the free text following a gres/gpu marker up to the
// next comma, e.g. "v100=2" from "gres/gpu:v100=2" or "1" from "gres/gpu=1".
// The marker must be followed by the separator itself: gres/gpuutil and
// gres/gpumem share the gres/gpu prefix and must not match.
func ExtractGPU(descriptor string) string {
	for _, kv := range strings.Split(descriptor, ",") {
		rest, found := strings.CutPrefix(kv, "gres/gpu")
		if found && rest != "" && (rest[0] == '=' || rest[0] == ':') {
			return rest[1:]
		}
	}
	return ""
}

package dex

import (
	"context"
	"strings"

	"github.com/rcliao/dexcache/internal/model"
)

var romanGenerations = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5,
	"vi": 6, "vii": 7, "viii": 8, "ix": 9,
}

// GenerationFromSlug converts "generation-iv" (or "iv") to 4. Anything else
// is model.UnknownGeneration.
func GenerationFromSlug(slug string) int {
	s := strings.TrimPrefix(strings.ToLower(slug), "generation-")
	if n, ok := romanGenerations[s]; ok {
		return n
	}
	return model.UnknownGeneration
}

// VersionGroupToGeneration resolves a version group to its generation number.
// Failures resolve to model.UnknownGeneration and are remembered.
func (d *Dex) VersionGroupToGeneration(ctx context.Context, versionGroup string) int {
	versionGroup = normalize(versionGroup)
	if versionGroup == "" {
		return model.UnknownGeneration
	}
	if n, ok := d.versionGroups.get(versionGroup); ok {
		return n
	}

	n := model.UnknownGeneration
	var vg model.VersionGroup
	if d.api.Get(ctx, d.api.URL("version-group", versionGroup), &vg) {
		n = GenerationFromSlug(vg.Generation.Name)
	}
	d.versionGroups.put(versionGroup, n)
	return n
}

// VersionToGeneration resolves a version through its version group to a
// generation. Failures resolve to model.UnknownGeneration and are remembered.
func (d *Dex) VersionToGeneration(ctx context.Context, version string) model.VersionGenerationMeta {
	version = normalize(version)
	unknown := model.VersionGenerationMeta{GenerationNumber: model.UnknownGeneration}
	if version == "" {
		return unknown
	}
	if m, ok := d.versions.get(version); ok {
		return m
	}

	meta := unknown
	var v model.Version
	if d.api.Get(ctx, d.api.URL("version", version), &v) && v.VersionGroup.Name != "" {
		meta = model.VersionGenerationMeta{
			GenerationNumber: d.VersionGroupToGeneration(ctx, v.VersionGroup.Name),
			VersionGroup:     v.VersionGroup.Name,
		}
	}
	d.versions.put(version, meta)
	return meta
}

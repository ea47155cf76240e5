package dex

import (
	"context"
	"sort"
	"strings"

	"github.com/rcliao/dexcache/internal/model"
)

// Representative picks the detail that stands for a move: the lowest-level
// level-up detail if any, otherwise the first detail. details must be
// non-empty.
func Representative(details []model.VersionGroupDetail) model.VersionGroupDetail {
	best := -1
	for i, det := range details {
		if det.MoveLearnMethod.Name != model.LearnLevelUp {
			continue
		}
		if best < 0 || det.LevelLearnedAt < details[best].LevelLearnedAt {
			best = i
		}
	}
	if best >= 0 {
		return details[best]
	}
	return details[0]
}

// Bucket maps a learn-method name to its movepool bucket.
func Bucket(method string) string {
	switch method {
	case model.LearnLevelUp, model.LearnMachine, model.LearnTutor, model.LearnEgg:
		return method
	default:
		return model.LearnOther
	}
}

// BuildMovepool buckets moves by learn method. A generation of 0 keeps every
// version-group detail; otherwise only details whose version group resolves
// to that generation count. filter is a case-insensitive name substring.
func (d *Dex) BuildMovepool(ctx context.Context, moves []model.PokemonMove, generation int, filter string) model.Movepool {
	filter = normalize(filter)
	pool := model.Movepool{}

	for _, m := range moves {
		if filter != "" && !strings.Contains(strings.ToLower(m.Move.Name), filter) {
			continue
		}

		details := m.VersionGroupDetails
		if generation > 0 {
			details = nil
			for _, det := range m.VersionGroupDetails {
				if d.VersionGroupToGeneration(ctx, det.VersionGroup.Name) == generation {
					details = append(details, det)
				}
			}
		}
		if len(details) == 0 {
			continue
		}

		rep := Representative(details)
		b := Bucket(rep.MoveLearnMethod.Name)
		rec := model.MoveLearnRecord{Name: m.Move.Name, VersionGroup: rep.VersionGroup.Name}
		if b == model.LearnLevelUp {
			level := rep.LevelLearnedAt
			rec.Level = &level
		}
		pool[b] = append(pool[b], rec)
	}

	for b, recs := range pool {
		if b == model.LearnLevelUp {
			sort.SliceStable(recs, func(i, j int) bool {
				if *recs[i].Level != *recs[j].Level {
					return *recs[i].Level < *recs[j].Level
				}
				return recs[i].Name < recs[j].Name
			})
			continue
		}
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	}
	return pool
}

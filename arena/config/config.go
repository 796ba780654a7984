package config

import (
	"encoding/json"
	"io/ioutil"
	"path"
	"path/filepath"

	"github.com/kardianos/osext"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/kartarena/kartarena/common/utils/vector"
	"github.com/kartarena/kartarena/game/racing"
)

type KartSetup struct {
	Name  string
	Start vector.Vector2
	Specs racing.KartSpecs
	Props racing.AIProperties
}

type ArenaConfig struct {
	Tps         int
	Description racing.ArenaDescription
	Karts       []KartSetup
}

type fileArenaConfig struct {
	Arena struct {
		Tps       int           `json:"tps"`
		HalfWidth float64       `json:"halfwidth"`
		HalfDepth float64       `json:"halfdepth"`
		Debug     bool          `json:"debug"`
		Route     [][3]float64  `json:"route"`
		Obstacles []fileassets  `json:"obstacles"`
	} `json:"arena"`
	Karts []struct {
		Name       string           `json:"name"`
		Difficulty string           `json:"difficulty"`
		Scale      int              `json:"scale"`
		Start      [2]float64       `json:"start"`
		Specs      racing.KartSpecs `json:"specs"`

		// Optional per-kart AI tuning; out-of-range values are clamped
		SkiddingThreshold *float64 `json:"skiddingthreshold"`
		TimeFullSteer     *float64 `json:"timefullsteer"`
	} `json:"karts"`
}

type fileassets struct {
	Name     string       `json:"name"`
	Material string       `json:"material"`
	Points   [][2]float64 `json:"points"`
}

// LoadArenaConfig reads and validates the arena configuration. Relative
// paths resolve against the executable, so a deployed binary finds its
// config next to itself.
func LoadArenaConfig(filename string) (ArenaConfig, error) {

	if !filepath.IsAbs(filename) {
		exfolder, err := osext.ExecutableFolder()
		if err != nil {
			return ArenaConfig{}, bettererrors.
				New("could not locate executable folder").
				With(bettererrors.NewFromErr(err))
		}

		filename = path.Join(exfolder, filename)
	}

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return ArenaConfig{}, bettererrors.
			New("could not read arena config").
			SetContext("file", filename).
			With(bettererrors.NewFromErr(err))
	}

	var fileconfig fileArenaConfig
	if err := json.Unmarshal(data, &fileconfig); err != nil {
		return ArenaConfig{}, bettererrors.
			New("arena config is not valid json").
			SetContext("file", filename).
			With(bettererrors.NewFromErr(err))
	}

	if fileconfig.Arena.Tps <= 0 {
		return ArenaConfig{}, bettererrors.New("tps must be provided in the arena configuration")
	}

	if fileconfig.Arena.HalfWidth <= 0 || fileconfig.Arena.HalfDepth <= 0 {
		return ArenaConfig{}, bettererrors.New("arena extents must be provided in the arena configuration")
	}

	if len(fileconfig.Arena.Route) == 0 {
		return ArenaConfig{}, bettererrors.New("a route must be provided in the arena configuration")
	}

	route := make([]vector.Vector3, len(fileconfig.Arena.Route))
	for i, p := range fileconfig.Arena.Route {
		route[i] = vector.MakeVector3(p[0], p[1], p[2])
	}

	obstacles := make([]racing.ObstacleDescription, 0, len(fileconfig.Arena.Obstacles))
	for _, obstacle := range fileconfig.Arena.Obstacles {
		points := make([]vector.Vector2, len(obstacle.Points))
		for i, p := range obstacle.Points {
			points[i] = vector.MakeVector2(p[0], p[1])
		}

		obstacles = append(obstacles, racing.ObstacleDescription{
			Name:     obstacle.Name,
			Material: obstacle.Material,
			Points:   points,
		})
	}

	arenaconfig := ArenaConfig{
		Tps: fileconfig.Arena.Tps,
		Description: racing.ArenaDescription{
			Tps:       fileconfig.Arena.Tps,
			HalfWidth: fileconfig.Arena.HalfWidth,
			HalfDepth: fileconfig.Arena.HalfDepth,
			Route:     route,
			Obstacles: obstacles,
			Debug:     fileconfig.Arena.Debug,
		},
	}

	for _, kart := range fileconfig.Karts {

		props := racing.AIPropertiesForDifficulty(racing.DifficultyFromString(kart.Difficulty))

		// Per-kart tuning goes through MakeAIProperties so out-of-range
		// values are clamped, never rejected.
		skiddingThreshold := props.SkiddingThreshold
		if kart.SkiddingThreshold != nil {
			skiddingThreshold = *kart.SkiddingThreshold
		}

		timeFullSteer := props.TimeFullSteer
		if kart.TimeFullSteer != nil {
			timeFullSteer = *kart.TimeFullSteer
		}

		tuned := racing.MakeAIProperties(skiddingThreshold, timeFullSteer)
		props.SkiddingThreshold = tuned.SkiddingThreshold
		props.TimeFullSteer = tuned.TimeFullSteer
		props.Debug = fileconfig.Arena.Debug

		setup := KartSetup{
			Name:  kart.Name,
			Start: vector.MakeVector2(kart.Start[0], kart.Start[1]),
			Specs: kart.Specs,
			Props: props,
		}

		scale := kart.Scale
		if scale == 0 {
			scale = 1
		}

		for i := 0; i < scale; i++ {
			arenaconfig.Karts = append(arenaconfig.Karts, setup)
		}
	}

	return arenaconfig, nil
}

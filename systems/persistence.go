package systems

import (
	"encoding/json"

	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/logging"
	"github.com/automoto/forcelab/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const viewKey = "view"

// SavedView represents the view preferences stored on disk. Simulation
// inputs are never persisted.
type SavedView struct {
	ForceToPixels  float64 `json:"forceToPixels"`
	ShowComponents bool    `json:"showComponents"`
	Fullscreen     bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.View.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadView loads view preferences from disk. It returns nil when nothing
// has been saved yet or persistence is unavailable.
func LoadView() (*SavedView, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(viewKey)
	if err != nil {
		logging.Provide().Warn("could not load view preferences", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedView
	if err := json.Unmarshal(data, &saved); err != nil {
		logging.Provide().Warn("could not parse view preferences", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

// SaveView writes view preferences to disk
func SaveView(s *SavedView) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(viewKey, data); err != nil {
		logging.Provide().Warn("could not save view preferences", zap.Error(err))
		return err
	}
	return nil
}

// ApplySavedView copies saved preferences into the world and the window
func ApplySavedView(w donburi.World, saved *SavedView) {
	if saved == nil {
		return
	}
	simulation.ApplyView(w, saved.ForceToPixels, saved.ShowComponents, saved.Fullscreen)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// UpdatePersistence saves the view preferences after they change
func UpdatePersistence(ecs *ecs.ECS) {
	v := simulation.GetOrCreateView(ecs.World)
	if !v.Dirty {
		return
	}
	v.Dirty = false
	_ = SaveView(&SavedView{
		ForceToPixels:  v.ForceToPixels,
		ShowComponents: v.ShowComponents,
		Fullscreen:     v.Fullscreen,
	})
}

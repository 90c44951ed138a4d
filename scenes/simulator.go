package scenes

import (
	"sync"

	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/simulation"
	"github.com/automoto/forcelab/systems"
	"github.com/automoto/forcelab/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Quitter lets a scene end the program
type Quitter interface {
	Quit()
}

// SimulatorScene shows the force diagram with its control panel
type SimulatorScene struct {
	ecs     *ecs.ECS
	ui      *ui.SimulatorUI
	quitter Quitter
	saved   *systems.SavedView
	once    sync.Once
}

// NewSimulatorScene creates the simulator. saved may be nil.
func NewSimulatorScene(q Quitter, saved *systems.SavedView) *SimulatorScene {
	return &SimulatorScene{quitter: q, saved: saved}
}

func (ss *SimulatorScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
	ss.ui.Update()
}

func (ss *SimulatorScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
	ss.ui.UI.Draw(screen)
}

func (ss *SimulatorScene) configure() {
	w := donburi.NewWorld()
	ss.ecs = ecs.NewECS(w)

	simulation.GetOrCreate(w)
	systems.ApplySavedView(w, ss.saved)
	systems.GetOrCreateLayouts(ss.ecs)
	simulation.Settle(w, simulation.Resolve(w).ContactLost())

	// Subscribers run when ProcessEvents drains the queue
	simulation.WatchContact(w)
	ss.ui = ui.NewSimulatorUI(w)
	simulation.StateChanged.Subscribe(w, ss.ui.OnStateChanged)

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateControls(ss.quit))
	ss.ecs.AddSystem(systems.UpdateDrag)
	ss.ecs.AddSystem(systems.ProcessEvents)
	ss.ecs.AddSystem(systems.UpdateEffects)
	ss.ecs.AddSystem(systems.UpdatePersistence)

	ss.ecs.AddRenderer(cfg.Default, systems.DrawDiagram)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawWarning)
	ss.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
}

func (ss *SimulatorScene) quit() {
	if ss.quitter != nil {
		ss.quitter.Quit()
	}
}

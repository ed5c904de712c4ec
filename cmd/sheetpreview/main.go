// Command sheetpreview plays the player sprite sheet animations so frame
// counts and rates in settings.yaml can be checked by eye.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/giftrunner/assets"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/ecs/entity"
	"github.com/milk9111/giftrunner/ecs/render"
	"github.com/milk9111/giftrunner/ecs/system"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/tween"
)

const previewSize = 512

type previewGame struct {
	world   *ecs.World
	player  ecs.Entity
	systems *ecs.Scheduler
	render  *render.RenderSystem
	names   []string
	current int
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.play((g.current + 1) % len(g.names))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.play((g.current + len(g.names) - 1) % len(g.names))
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.play(g.current)
	}
	g.systems.Update(g.world)
	return nil
}

// play restarts the animation at index i.
func (g *previewGame) play(i int) {
	g.current = i
	anim, ok := ecs.Get(g.world, g.player, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	anim.Current = g.names[i]
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	g.render.Draw(g.world, screen)
	anim, ok := ecs.Get(g.world, g.player, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	def := anim.Defs[anim.Current]
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  %.0f fps\nleft/right: switch  space: restart", anim.Current, anim.Frame+1, def.FrameCount, def.FPS))
}

func (g *previewGame) Layout(_, _ int) (int, int) {
	return previewSize, previewSize
}

func main() {
	settingsPath := flag.String("settings", "", "settings yaml overlaid on the embedded defaults")
	artDir := flag.String("art", "", "directory of <key>.png files replacing generated art")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sheetpreview"})
	s, err := prefabs.LoadSettings(*settingsPath)
	if err != nil {
		logger.Fatal("settings", "err", err)
	}
	for _, err := range render.LoadImages(assets.Images(s), *artDir) {
		logger.Warn("art override skipped", "err", err)
	}

	w := ecs.NewWorld()
	tasks := tween.NewScheduler()
	player, err := entity.NewIdlePlayer(w, s, tasks)
	if err != nil {
		logger.Fatal("player", "err", err)
	}
	if err := entity.SetEntityTransform(w, player, previewSize/2, previewSize/2); err != nil {
		logger.Fatal("player", "err", err)
	}

	g := &previewGame{
		world:   w,
		player:  player,
		systems: ecs.NewScheduler(system.NewTaskSystem(tasks), system.NewAnimationSystem()),
		render:  render.NewRenderSystem(),
	}
	for _, a := range s.Animations.Rows() {
		g.names = append(g.names, a.Name)
	}
	g.play(0)

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Player Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", "err", err)
	}
}


package strip

import (
	"fmt"

	"stampcard/internal/domain/entity"
)

// Fixed canvas of the rendered strip bitmap.
const (
	CanvasWidth  = 1032
	CanvasHeight = 336
)

// MaxRewardChars bounds the reward line drawn on the strip.
const MaxRewardChars = 50

const (
	defaultSpacing   = 0.25
	defaultIconScale = 0.8
	fadedOpacity     = 0.35
	gridPaneFraction = 0.6
)

// Relative offsets of the strip furniture, as fractions of the canvas.
const (
	padXFrac       = 0.04
	titleBaseline  = 0.15
	titleSize      = 0.10
	gridTop        = 0.21
	gridBottom     = 0.82
	footerBaseline = 0.95
	footerSize     = 0.08
	rewardXFrac    = 0.30
)

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Text is a single line drawn with its baseline at (X, Y).
type Text struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

// Background is a two-stop vertical gradient with an optional texture.
type Background struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Texture string `json:"texture,omitempty"`
}

// CellDraw is the paint instruction for one grid cell.
type CellDraw struct {
	Index      int              `json:"index"`
	Box        Rect             `json:"box"`
	IconSize   float64          `json:"icon_size"`
	Active     bool             `json:"active"`
	Goal       bool             `json:"goal"`
	Decorative bool             `json:"decorative"`
	Visible    bool             `json:"visible"`
	Fill       string           `json:"fill,omitempty"`
	Stroke     string           `json:"stroke,omitempty"`
	Opacity    float64          `json:"opacity"`
	Icon       entity.StampIcon `json:"icon"`
	Glyph      string           `json:"glyph"`
	ImageURL   string           `json:"image_url,omitempty"`
	DropShadow bool             `json:"drop_shadow"`
}

// Scene is the declarative description of a strip. The interactive preview
// paints it directly; the rasterizer draws the same scene into a bitmap.
type Scene struct {
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	Strategy   entity.VisualStrategy `json:"strategy"`
	Background Background            `json:"background"`
	HeroImage  string                `json:"hero_image,omitempty"`
	GridPane   Rect                  `json:"grid_pane"`
	SidePane   *Rect                 `json:"side_pane,omitempty"`
	SideImage  string                `json:"side_image,omitempty"`
	Grid       Grid                  `json:"grid"`
	Cells      []CellDraw            `json:"cells"`
	Title      Text                  `json:"title"`
	Counter    Text                  `json:"counter"`
	Reward     Text                  `json:"reward"`
}

// SceneInput is everything a scene depends on. Slider-driven controls only
// touch Branding.Spacing and Branding.IconScale, so a preview can rebuild
// the scene on every frame.
type SceneInput struct {
	BusinessName string
	Branding     entity.BrandingConfig
	Rules        entity.RulesConfig
	Progress     int
	Width        int
	Height       int
	Avatar       AvatarFallback
}

// SceneInputFrom builds the input for a card snapshot at canvas size.
func SceneInputFrom(snap *entity.CardSnapshot, avatar AvatarFallback) SceneInput {
	return SceneInput{
		BusinessName: snap.Business.Name,
		Branding:     snap.Business.Branding,
		Rules:        snap.Business.Rules,
		Progress:     snap.Progress(),
		Avatar:       avatar,
	}
}

// BuildScene lays out the strip for in.
func BuildScene(in SceneInput) (*Scene, error) {
	width, height := in.Width, in.Height
	if width <= 0 || height <= 0 {
		width, height = CanvasWidth, CanvasHeight
	}
	w, h := float64(width), float64(height)
	b := in.Branding

	strategy := b.Strategy
	if strategy == "" {
		strategy = entity.StrategyIconicGrid
	}

	layout := b.Layout.Normalize()
	grid := BuildGrid(in.Rules.TargetStamps, in.Progress, layout, b.Grid)
	total := grid.Total

	bgHex := HexOr(b.Colors.Background, DefaultBackground)
	bg, _ := ParseHexColor(bgHex)
	fg := HexOr(b.Colors.Foreground, DefaultForeground)

	scene := &Scene{
		Width:    width,
		Height:   height,
		Strategy: strategy,
		Background: Background{
			From: bgHex,
			To:   Hex(Darken(bg, 0.2)),
		},
		Grid: grid,
	}
	if IsValidImageURL(b.Assets.Texture) {
		scene.Background.Texture = b.Assets.Texture
	}

	hero, err := SelectHeroImage(strategy, CandidatesFrom(b.Assets), in.Progress, total)
	if err != nil {
		return nil, err
	}
	if hero != "" {
		scene.HeroImage = in.Avatar.Durable(hero, in.BusinessName, bgHex)
	}

	padX := w * padXFrac
	pane := Rect{X: padX, Y: h * gridTop, W: w - 2*padX, H: h * (gridBottom - gridTop)}
	switch layout {
	case entity.LayoutLeft:
		split := w * gridPaneFraction
		pane.W = split - padX - padX/2
		scene.SidePane = &Rect{X: split, Y: 0, W: w - split, H: h}
	case entity.LayoutRight:
		split := w * (1 - gridPaneFraction)
		pane.X = split + padX/2
		pane.W = w - pane.X - padX
		scene.SidePane = &Rect{X: 0, Y: 0, W: split, H: h}
	case entity.LayoutCenter:
	}
	scene.GridPane = pane
	if scene.SidePane != nil && IsValidImageURL(b.Assets.SideImage) {
		scene.SideImage = b.Assets.SideImage
	}

	scene.Cells = layoutCells(grid, pane, b)

	fontTitle := h * titleSize
	fontFooter := h * footerSize
	scene.Title = Text{Text: in.BusinessName, X: padX, Y: h * titleBaseline, Size: fontTitle, Color: fg}
	scene.Counter = Text{
		Text:  fmt.Sprintf("%d / %d", in.Progress, total),
		X:     padX,
		Y:     h * footerBaseline,
		Size:  fontFooter,
		Color: fg,
	}
	scene.Reward = Text{
		Text:  TruncateReward(in.Rules.RewardName),
		X:     w * rewardXFrac,
		Y:     h * footerBaseline,
		Size:  fontFooter,
		Color: fg,
	}

	return scene, nil
}

// layoutCells sizes the cells to fit pane and aligns the grid horizontally.
func layoutCells(grid Grid, pane Rect, b entity.BrandingConfig) []CellDraw {
	cols, rows := float64(grid.Geometry.Cols), float64(grid.Geometry.Rows)

	spacing := b.Spacing
	if spacing <= 0 {
		spacing = defaultSpacing
	}
	spacing = min(spacing, 1)

	iconScale := b.IconScale
	if iconScale <= 0 {
		iconScale = defaultIconScale
	}
	iconScale = min(iconScale, 1)

	size := min(pane.W/(cols+(cols-1)*spacing), pane.H/(rows+(rows-1)*spacing))
	gap := size * spacing
	gridW := cols*size + (cols-1)*gap
	gridH := rows*size + (rows-1)*gap

	originX := pane.X
	switch b.Alignment {
	case entity.AlignStart:
	case entity.AlignEnd:
		originX = pane.X + pane.W - gridW
	default:
		originX = pane.X + (pane.W-gridW)/2
	}
	originY := pane.Y + (pane.H-gridH)/2

	active := HexOr(b.Colors.StampActive, DefaultStampActive)
	inactive := HexOr(b.Colors.StampInactive, DefaultStampInactive)
	icon := normalizeIcon(b.Icon)

	stampImage := ""
	if IsValidImageURL(b.Assets.StampIcon) {
		stampImage = b.Assets.StampIcon
	}
	goalImage := ""
	if IsValidImageURL(b.Assets.GoalStampIcon) {
		goalImage = b.Assets.GoalStampIcon
	}

	out := make([]CellDraw, len(grid.Cells))
	for i, cell := range grid.Cells {
		d := CellDraw{
			Index: cell.Index,
			Box: Rect{
				X: originX + float64(cell.Col)*(size+gap),
				Y: originY + float64(cell.Row)*(size+gap),
				W: size,
				H: size,
			},
			IconSize:   size * iconScale,
			Active:     cell.Active,
			Goal:       cell.IsGoal,
			Decorative: cell.Decorative,
			Visible:    true,
			Icon:       icon,
			ImageURL:   stampImage,
			DropShadow: b.DropShadow,
		}

		if cell.IsGoal && goalImage != "" {
			d.ImageURL = goalImage
			d.Icon = entity.IconStar
		}
		d.Glyph = Glyph(d.Icon, cell.Active)

		if cell.Active {
			d.Fill, d.Stroke, d.Opacity = active, active, 1
		} else {
			switch b.InactiveStyle {
			case entity.InactiveHidden:
				d.Visible = false
			case entity.InactiveOutline:
				d.Stroke, d.Opacity = inactive, 1
			default:
				d.Fill, d.Stroke, d.Opacity = inactive, inactive, fadedOpacity
			}
		}

		out[i] = d
	}

	return out
}

func normalizeIcon(icon entity.StampIcon) entity.StampIcon {
	switch icon {
	case entity.IconStar, entity.IconCoffee, entity.IconHeart, entity.IconCheck:
		return icon
	default:
		return entity.IconCircle
	}
}

// Glyph is the Unicode stand-in for an icon in the given state.
func Glyph(icon entity.StampIcon, active bool) string {
	switch icon {
	case entity.IconStar:
		if active {
			return "★"
		}

		return "☆"
	case entity.IconHeart:
		if active {
			return "♥"
		}

		return "♡"
	case entity.IconCoffee:
		return "☕"
	case entity.IconCheck:
		return "✓"
	default:
		if active {
			return "●"
		}

		return "○"
	}
}

// TruncateReward shortens a reward name to at most MaxRewardChars runes.
func TruncateReward(reward string) string {
	r := []rune(reward)
	if len(r) <= MaxRewardChars {
		return reward
	}

	return string(r[:MaxRewardChars-3]) + "..."
}

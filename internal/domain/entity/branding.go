package entity

// SplitLayout places the stamp grid relative to an optional side image.
type SplitLayout string

const (
	// LayoutLeft puts the grid in the left pane and the side image on the right.
	LayoutLeft SplitLayout = "left"
	// LayoutCenter gives the grid the full strip width.
	LayoutCenter SplitLayout = "center"
	// LayoutRight puts the grid in the right pane and the side image on the left.
	LayoutRight SplitLayout = "right"
)

// IsSplit reports whether the strip is shared with a side image.
func (l SplitLayout) IsSplit() bool {
	return l == LayoutLeft || l == LayoutRight
}

// Normalize maps unknown or empty layouts to LayoutCenter.
func (l SplitLayout) Normalize() SplitLayout {
	switch l {
	case LayoutLeft, LayoutRight:
		return l
	default:
		return LayoutCenter
	}
}

// Alignment aligns the grid inside its pane.
type Alignment string

const (
	AlignStart  Alignment = "start"
	AlignCenter Alignment = "center"
	AlignEnd    Alignment = "end"
)

// InactiveStyle controls how not-yet-earned stamps are drawn.
type InactiveStyle string

const (
	// InactiveFaded draws the stamp glyph in the inactive color at reduced opacity.
	InactiveFaded InactiveStyle = "faded"
	// InactiveOutline draws only the cell outline.
	InactiveOutline InactiveStyle = "outline"
	// InactiveHidden leaves inactive cells empty.
	InactiveHidden InactiveStyle = "hidden"
)

// StampIcon is the built-in glyph family used for stamps.
type StampIcon string

const (
	IconCircle StampIcon = "circle"
	IconStar   StampIcon = "star"
	IconCoffee StampIcon = "coffee"
	IconHeart  StampIcon = "heart"
	IconCheck  StampIcon = "check"
)

// Bounds of a program's stamp grid. The tags on GridOverride repeat the
// grid maximums.
const (
	MaxTargetStamps = 50
	MaxGridCols     = 10
	MaxGridRows     = 10
)

// GridOverride is a manual grid shape chosen in the design wizard.
type GridOverride struct {
	Cols int `json:"cols" validate:"omitempty,min=1,max=10"`
	Rows int `json:"rows" validate:"omitempty,min=1,max=10"`
}

// Valid reports whether both dimensions are positive.
func (g *GridOverride) Valid() bool {
	return g != nil && g.Cols > 0 && g.Rows > 0
}

// Colors holds the hex colors of a program.
type Colors struct {
	Background    string `json:"background"`
	Foreground    string `json:"foreground"`
	Label         string `json:"label"`
	StampActive   string `json:"stamp_active"`
	StampInactive string `json:"stamp_inactive"`
}

// Assets holds the uploaded asset URLs of a program.
type Assets struct {
	Logo           string   `json:"logo"`
	Strip          string   `json:"strip"`
	Hero           string   `json:"hero"`
	StripCompleted string   `json:"strip_completed"`
	Progressive    []string `json:"progressive"`
	SideImage      string   `json:"side_image"`
	Texture        string   `json:"texture"`
	StampIcon      string   `json:"stamp_icon"`
	GoalStampIcon  string   `json:"goal_stamp_icon"`
}

// BrandingConfig is the visual configuration of a program. It is only
// written by the design wizard and read-only here.
type BrandingConfig struct {
	Strategy      VisualStrategy `json:"visual_strategy"`
	Colors        Colors         `json:"colors"`
	Assets        Assets         `json:"assets"`
	Icon          StampIcon      `json:"icon"`
	Grid          *GridOverride  `json:"grid,omitempty"`
	Spacing       float64        `json:"spacing"`
	IconScale     float64        `json:"icon_scale"`
	Alignment     Alignment      `json:"alignment"`
	InactiveStyle InactiveStyle  `json:"inactive_style"`
	Layout        SplitLayout    `json:"layout"`
	DropShadow    bool           `json:"drop_shadow"`
}

// RulesConfig holds the completion rules of a program.
type RulesConfig struct {
	TargetStamps int    `json:"target_stamps"`
	RewardName   string `json:"reward_name"`
}

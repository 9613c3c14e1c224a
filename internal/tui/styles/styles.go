package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	DexRed     = lipgloss.Color("#E3350D")
	Gold       = lipgloss.Color("#E5A00D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DexRed)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(DexRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	RewardStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)
)

// Raw milestone status characters (unstyled)
const (
	LockedChar    = "○"
	ClaimableChar = "★"
	ClaimedChar   = "✓"
)

// Milestone status indicator styles
var (
	LockedStyle    = lipgloss.NewStyle().Foreground(DimGray)
	ClaimableStyle = lipgloss.NewStyle().Foreground(Gold)
	ClaimedStyle   = lipgloss.NewStyle().Foreground(Green)
)

// Pre-rendered status indicators (for non-selection contexts)
var (
	LockedDot     = LockedStyle.Render(LockedChar)
	ClaimableStar = ClaimableStyle.Render(ClaimableChar)
	ClaimedCheck  = ClaimedStyle.Render(ClaimedChar)
)

// Tab bar styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(DexRed).
			Bold(true).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Padding(0, 2)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	MatchStyle = lipgloss.NewStyle().
			Foreground(DexRed).
			Bold(true)
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(DexRed).
				Bold(true)

	FilterStyle = lipgloss.NewStyle().
			Foreground(White)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	KeyHintStyle = lipgloss.NewStyle().
			Foreground(DexRed)
)

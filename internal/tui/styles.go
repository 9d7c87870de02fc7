package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	FooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	ToolNameStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("147")).Bold(true)
	HeaderPrimaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	HeaderDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	HeaderItalicStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	BodyTextStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	BodyDimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	StrikethroughStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	ResultStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	ResultDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ErrorLineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	TruncationNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	StatusPendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	StatusRunningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("222"))
	StatusCompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	StatusFailedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	StatusCancelledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	CodeGutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	BlockBorder     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	DiffAddStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	DiffDelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	DiffCtxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	BulletStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	HeadingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("222")).Bold(true)
	BoldInlineStyle    = lipgloss.NewStyle().Bold(true)
	ItalicInlineStyle  = lipgloss.NewStyle().Italic(true)
	StrikeInlineStyle  = lipgloss.NewStyle().Strikethrough(true)
	LinkTextStyle      = lipgloss.NewStyle()
	LinkURLStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	InlineCodeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	BlockquoteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	TableBorderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
)

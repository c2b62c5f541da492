package resolver

import (
	"github.com/modu-ai/ngfs/internal/flags"
)

// QuestionKind represents the type of question.
type QuestionKind int

const (
	// KindSelect is a single-choice selection question.
	KindSelect QuestionKind = iota
	// KindMultiSelect is a multiple-choice question; zero selections are allowed.
	KindMultiSelect
	// KindConfirm is a yes/no question answered with "true" or "false".
	KindConfirm
)

// Question defines a single question of a batch.
type Question struct {
	ID      string             // Unique identifier within the batch
	Kind    QuestionKind       // Select, MultiSelect or Confirm
	Title   string             // Question text
	Options []Option           // Choices for select and multi-select questions
	Default string             // Initial value for select ("" means first) and confirm ("true"/"false")
	When    func(Answers) bool // Ask only when true; nil means always
}

// Option represents a selectable option.
type Option struct {
	Label   string // Display label
	Value   string // Value stored in the answers
	Checked bool   // Pre-selected in multi-select questions
}

// Batch is an ordered group of questions asked together.
type Batch struct {
	Name      string // Step name, e.g. "clientPrompts"
	Title     string // Section heading shown before the batch
	Questions []Question
}

// Question IDs.
const (
	QSkipConfig  = "skipConfig"
	QTranspiler  = "transpiler"
	QMarkup      = "markup"
	QStylesheet  = "stylesheet"
	QRouter      = "router"
	QBootstrap   = "bootstrap"
	QUIBootstrap = "uibootstrap"
	QODMs        = "odms"
	QModels      = "models"
	QAuth        = "auth"
	QOAuth       = "oauth"
	QSocketIO    = "socketio"
	QBuildTool   = "buildtool"
	QTesting     = "testing"
	QChai        = "chai"
)

// ReuseQuestion asks whether an existing configuration should be reused.
func ReuseQuestion() Question {
	return Question{
		ID:      QSkipConfig,
		Kind:    KindConfirm,
		Title:   "Existing configuration found, would you like to use it?",
		Default: "true",
	}
}

// ClientQuestions returns the client batch.
func ClientQuestions() Batch {
	return Batch{
		Name:  StepClient,
		Title: "Client",
		Questions: []Question{
			{
				ID:    QTranspiler,
				Kind:  KindSelect,
				Title: "What would you like to write scripts with?",
				Options: []Option{
					{Label: "Babel", Value: string(flags.ScriptBabel)},
					{Label: "TypeScript", Value: string(flags.ScriptTypeScript)},
				},
			},
			{
				ID:    QMarkup,
				Kind:  KindSelect,
				Title: "What would you like to write markup with?",
				Options: []Option{
					{Label: "HTML", Value: string(flags.MarkupHTML)},
					{Label: "Jade", Value: string(flags.MarkupJade)},
				},
			},
			{
				ID:    QStylesheet,
				Kind:  KindSelect,
				Title: "What would you like to write stylesheets with?",
				Options: []Option{
					{Label: "CSS", Value: string(flags.StyleCSS)},
					{Label: "Sass", Value: string(flags.StyleSass)},
					{Label: "Stylus", Value: string(flags.StyleStylus)},
					{Label: "Less", Value: string(flags.StyleLess)},
				},
				Default: string(flags.StyleSass),
			},
			{
				ID:    QRouter,
				Kind:  KindSelect,
				Title: "What Angular router would you like to use?",
				Options: []Option{
					{Label: "ngRoute", Value: string(flags.RouterNgRoute)},
					{Label: "uiRouter", Value: string(flags.RouterUIRouter)},
				},
				Default: string(flags.RouterUIRouter),
			},
			{
				ID:      QBootstrap,
				Kind:    KindConfirm,
				Title:   "Would you like to include Bootstrap?",
				Default: "true",
			},
			{
				ID:      QUIBootstrap,
				Kind:    KindConfirm,
				Title:   "Would you like to include UI Bootstrap?",
				Default: "true",
				When:    func(a Answers) bool { return a.Bool(QBootstrap) },
			},
		},
	}
}

// ServerQuestions returns the server batch.
//
// The real-time question is gated on a data layer being selected, like the
// auth question. The two are not conceptually linked; the gate is kept so
// that generated projects stay compatible with existing configurations.
func ServerQuestions() Batch {
	anyODM := func(a Answers) bool { return len(a.Many(QODMs)) > 0 }

	return Batch{
		Name:  StepServer,
		Title: "Server",
		Questions: []Question{
			{
				ID:    QODMs,
				Kind:  KindMultiSelect,
				Title: "What would you like to use for data modeling?",
				Options: []Option{
					{Label: "Mongoose (MongoDB)", Value: string(flags.DataMongoose), Checked: true},
					{Label: "Sequelize (MySQL, SQLite, MariaDB, PostgreSQL)", Value: string(flags.DataSequelize)},
				},
			},
			{
				ID:    QModels,
				Kind:  KindSelect,
				Title: "What would you like to use for the default models?",
				Options: []Option{
					{Label: "Mongoose", Value: string(flags.DataMongoose)},
					{Label: "Sequelize", Value: string(flags.DataSequelize)},
				},
				When: func(a Answers) bool { return len(a.Many(QODMs)) > 1 },
			},
			{
				ID:      QAuth,
				Kind:    KindConfirm,
				Title:   "Would you scaffold out an authentication boilerplate?",
				Default: "true",
				When:    anyODM,
			},
			{
				ID:    QOAuth,
				Kind:  KindMultiSelect,
				Title: "Would you like to include additional oAuth strategies?",
				Options: []Option{
					{Label: "Google", Value: string(flags.AuthGoogle)},
					{Label: "Facebook", Value: string(flags.AuthFacebook)},
					{Label: "Twitter", Value: string(flags.AuthTwitter)},
				},
				When: func(a Answers) bool { return a.Bool(QAuth) },
			},
			{
				ID:      QSocketIO,
				Kind:    KindConfirm,
				Title:   "Would you like to use socket.io?",
				Default: "true",
				When:    anyODM,
			},
		},
	}
}

// ProjectQuestions returns the project batch.
func ProjectQuestions() Batch {
	return Batch{
		Name:  StepProject,
		Title: "Project",
		Questions: []Question{
			{
				ID:    QBuildTool,
				Kind:  KindSelect,
				Title: "Would you like to use Gulp or Grunt?",
				Options: []Option{
					{Label: "Grunt", Value: string(flags.BuildGrunt)},
					{Label: "Gulp", Value: string(flags.BuildGulp)},
				},
			},
			{
				ID:    QTesting,
				Kind:  KindSelect,
				Title: "What would you like to write tests with?",
				Options: []Option{
					{Label: "Jasmine", Value: string(flags.TestJasmine)},
					{Label: "Mocha + Chai + Sinon", Value: string(flags.TestMocha)},
				},
			},
			{
				ID:    QChai,
				Kind:  KindSelect,
				Title: "What would you like to write Chai assertions with?",
				Options: []Option{
					{Label: "Expect", Value: string(flags.AssertExpect)},
					{Label: "Should", Value: string(flags.AssertShould)},
				},
				When: func(a Answers) bool { return a.One(QTesting) == string(flags.TestMocha) },
			},
		},
	}
}

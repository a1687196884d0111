package printing

import (
	"time"

	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/intake"
)

// StatementHeader is shared by every statement
type StatementHeader struct {
	Company     string
	Title       string
	Party       string
	Mine        string
	GeneratedAt time.Time
}

// IntakeStatement is the view model of a todi, gala or todi raskat statement
type IntakeStatement struct {
	StatementHeader
	Record *intake.Record
}

// BlockStatement is the view model of a block statement
type BlockStatement struct {
	StatementHeader
	Block *block.Block
}

// IntakeStatementHTML renders a statement for r. party is the vendor's display name.
func (e *TemplateEngine) IntakeStatementHTML(r *intake.Record, party string) (string, error) {
	return e.Render(TemplateIntakeStatement, IntakeStatement{
		StatementHeader: StatementHeader{
			Company:     e.company,
			Title:       titleCase(string(r.Kind)) + " Statement",
			Party:       party,
			GeneratedAt: e.now(),
		},
		Record: r,
	})
}

// BlockStatementHTML renders a statement for b
func (e *TemplateEngine) BlockStatementHTML(b *block.Block, party, mine string) (string, error) {
	return e.Render(TemplateBlockStatement, BlockStatement{
		StatementHeader: StatementHeader{
			Company:     e.company,
			Title:       "Block Statement",
			Party:       party,
			Mine:        mine,
			GeneratedAt: e.now(),
		},
		Block: b,
	})
}

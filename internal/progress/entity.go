package progress

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/interview-coach/internal/question"
	"gorm.io/gorm"
)

const (
	SkippedAnswer   = "Skipped"
	SkippedFeedback = "Question was skipped"
)

// Session is one completed interview. It is written once and never updated.
type Session struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index:idx_sessions_user_completed,priority:1" json:"userId"`
	Topic       string              `gorm:"type:text;not null" json:"topic"`
	Difficulty  question.Difficulty `gorm:"type:varchar(10);not null" json:"difficulty"`
	TotalScore  float64             `gorm:"not null;default:0" json:"totalScore"`
	CompletedAt time.Time           `gorm:"not null;index:idx_sessions_user_completed,priority:2,sort:desc" json:"completedAt"`

	Questions []SessionQuestion `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Session) TableName() string { return "progress_sessions" }

// BeforeCreate assigns a time-ordered id, the tie-break for sessions
// completed at the same instant.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = newSessionID()
	}
	return nil
}

func newSessionID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

type SessionQuestion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	OrderIndex int       `gorm:"not null" json:"-"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	UserAnswer string    `gorm:"type:text" json:"userAnswer"`
	Evaluation string    `gorm:"type:text" json:"evaluation"`
	Score      float64   `gorm:"not null;default:0" json:"score"`
}

func (SessionQuestion) TableName() string { return "progress_session_questions" }

func (q *SessionQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// Models lists the tables owned by this package, for migrations.
func Models() []any {
	return []any{&Session{}, &SessionQuestion{}}
}

package model

import "time"

// Band holds the colors renderers use for a risk score
type Band struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Glow  string `json:"glow"`
}

// Response is one answered question as shown in a report
type Response struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// Resource is a curated link appended to every report
type Resource struct {
	Text     string `json:"text" bson:"text"`
	Link     string `json:"link" bson:"link"`
	LinkText string `json:"linkText" bson:"linkText"`
}

// Report is the scored result of a completed questionnaire
type Report struct {
	Profile         Profile    `json:"profile"`
	RiskScore       int        `json:"riskScore"` // 0-100
	Band            Band       `json:"band"`
	Description     string     `json:"description"`
	Recommendations []string   `json:"recommendations"`
	Responses       []Response `json:"responses"`
	Resources       []Resource `json:"resources"`
	Closing         []string   `json:"closing"`
	Answers         Answers    `json:"answers"`
	GeneratedAt     time.Time  `json:"generatedAt"`
}

// NarrativeStatus is the state of an AI narrative job
type NarrativeStatus string

const (
	NarrativePending NarrativeStatus = "pending"
	NarrativeReady   NarrativeStatus = "ready"
	NarrativeFailed  NarrativeStatus = "failed"
)

// NarrativeJob is an asynchronous AI narrative generation
type NarrativeJob struct {
	ID        string          `json:"id"`
	Status    NarrativeStatus `json:"status"`
	Report    string          `json:"report,omitempty"` // Generated prose when ready
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	ReadyAt   *time.Time      `json:"readyAt,omitempty"`
}

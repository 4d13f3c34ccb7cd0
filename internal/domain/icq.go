package domain

// ICQAnswer is a response to an internal control question. The zero value means unanswered.
type ICQAnswer string

const (
	ICQUnanswered    ICQAnswer = ""
	ICQYes           ICQAnswer = "Yes"
	ICQNo            ICQAnswer = "No"
	ICQNotApplicable ICQAnswer = "N/A"
)

func (a ICQAnswer) IsValid() bool {
	switch a {
	case ICQYes, ICQNo, ICQNotApplicable:
		return true
	}
	return false
}

// ICQQuestion is one entry of the internal control questionnaire for the cash cycle.
type ICQQuestion struct {
	ID         string    `json:"id" yaml:"id"`
	Question   string    `json:"question" yaml:"question"`
	Answer     ICQAnswer `json:"answer" yaml:"-"`
	RiskWeight Severity  `json:"riskWeight" yaml:"risk_weight"`
}

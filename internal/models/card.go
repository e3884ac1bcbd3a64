package models

// Card is one question/answer pair plus its study state.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Mastered bool   `json:"mastered"`
}

// NewCard creates an unmastered card.
func NewCard(question, answer string) Card {
	return Card{Question: question, Answer: answer}
}

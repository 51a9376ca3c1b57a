package domain

// Result of an AI image diagnosis. Model records which model in the fallback
// chain actually produced the answer.
type Diagnosis struct {
	Model  string
	Advice string
}

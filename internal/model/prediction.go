package model

type Prediction struct {
	ProductID    string `json:"product_id"`
	PredictedQty int    `json:"predicted_qty"`
	Confidence   int    `json:"confidence"` // Percent, 0..95
	Comment      string `json:"comment"`
	Date         string `json:"date"` // YYYY-MM-DD, local
}

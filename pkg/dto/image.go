package dto

// FeaturesResponse is the wire form of extracted pet features.
type FeaturesResponse struct {
	Breed      string   `json:"breed,omitempty"`
	Color      string   `json:"color,omitempty"`
	Size       string   `json:"size,omitempty"`
	Markings   []string `json:"markings,omitempty"`
	Confidence float64  `json:"confidence"`
}

// AnalyzeResponse reports one image analysis. IsMockData is true whenever
// the features came from the mock provider rather than a real model.
type AnalyzeResponse struct {
	Success    bool             `json:"success"`
	Features   FeaturesResponse `json:"features"`
	IsMockData bool             `json:"isMockData"`
	ImageKey   string           `json:"imageKey,omitempty"`
}

// CompareResponse reports the similarity of two analyzed images as a
// percentage.
type CompareResponse struct {
	Success    bool    `json:"success"`
	Similarity float64 `json:"similarity"`
}

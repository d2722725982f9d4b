package dto

// UpdateResult mirrors the raw store update acknowledgement the user update
// endpoints respond with instead of the updated document.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

package types

// Data is one row of the datas table. DataID is assigned by the store.
type Data struct {
	DataID      int64  `json:"data_id" db:"data_id"`
	EntryNumber string `json:"entry_number" db:"entry_number"`
	Objective   string `json:"objective" db:"objective"`
	Message     string `json:"message" db:"message"`
	Schedule    string `json:"schedule" db:"schedule"`
	DateTime    string `json:"date_time" db:"date_time"`
	Sender      string `json:"sender" db:"sender"`
}

// DataPayload is the client supplied part of a Data.
type DataPayload struct {
	EntryNumber string
	Objective   string
	Message     string
	Schedule    string
	DateTime    string
	Sender      string
}

func (p DataPayload) ToData(id int64) Data {
	return Data{
		DataID:      id,
		EntryNumber: p.EntryNumber,
		Objective:   p.Objective,
		Message:     p.Message,
		Schedule:    p.Schedule,
		DateTime:    p.DateTime,
		Sender:      p.Sender,
	}
}

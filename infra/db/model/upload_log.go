package model

type UploadLog struct {
	ID         int64  `gorm:"primary_key;auto_increment" json:"id"`
	UploadID   string `gorm:"size:36;unique_index;not null" json:"upload_id"`
	FileName   string `gorm:"size:255;not null" json:"file_name"`
	Added      int    `gorm:"not null" json:"added"`
	Skipped    int    `gorm:"not null" json:"skipped"`
	TotalRows  int    `gorm:"not null" json:"total_rows"`
	ErrorCount int    `gorm:"not null" json:"error_count"`
	DurationMs int64  `gorm:"not null" json:"duration_ms"`
	CreateTime int64  `gorm:"not null" json:"create_time"`
}

func (UploadLog) TableName() string {
	return "upload_logs"
}

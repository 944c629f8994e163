package models

import (
	"time"
)

// Scan is one append-only scan event. QRCodeID is a back-reference used
// for lookups only; it is not checked against the qrcodes collection.
type Scan struct {
	ID        ID                `json:"id" bson:"_id,omitempty"`
	QRCodeID  ID                `json:"qr_code_id" bson:"qr_code_id"`
	Timestamp time.Time         `json:"timestamp" bson:"timestamp"`
	UserAgent string            `json:"user_agent" bson:"user_agent"`
	IPAddress string            `json:"ip_address" bson:"ip_address"`
	Metadata  map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

type ScanTotal struct {
	TotalScans int64 `json:"total_scans" bson:"total_scans"`
}

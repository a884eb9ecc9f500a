package services

import (
	"fmt"
	"gate-app/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequence prefixes
const (
	ReportNoPrefix = "RPT"
	LotNoPrefix    = "LOT"
	EntryNoPrefix  = "GE"
)

// NextSequenceNumber takes the next value of a per-day counter. The sequence
// row is locked FOR UPDATE inside the caller's transaction, which serializes
// concurrent creations on the same (prefix, day) pair. Must be called with a
// transaction handle, never the root DB.
func NextSequenceNumber(tx *gorm.DB, prefix string, day time.Time) (string, error) {
	dateKey := day.Format("20060102")

	var seq models.NumberSequence
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ? AND date_key = ?", prefix, dateKey).
		First(&seq).Error

	if err == gorm.ErrRecordNotFound {
		seq = models.NumberSequence{Prefix: prefix, DateKey: dateKey, LastValue: 0}
		if err := tx.Create(&seq).Error; err != nil {
			return "", err
		}
		// Re-read under lock: another transaction may have created the row
		// between our failed read and the insert.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("prefix = ? AND date_key = ?", prefix, dateKey).
			First(&seq).Error; err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}

	seq.LastValue++
	if err := tx.Model(&models.NumberSequence{}).
		Where("id = ?", seq.ID).
		Update("last_value", seq.LastValue).Error; err != nil {
		return "", err
	}

	return FormatSequenceNumber(prefix, dateKey, seq.LastValue), nil
}

// FormatSequenceNumber renders PREFIX-YYYYMMDD-NNNN.
func FormatSequenceNumber(prefix, dateKey string, value int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, dateKey, value)
}

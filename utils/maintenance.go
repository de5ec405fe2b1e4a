package utils

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"cms-backend/models"
)

// InitializeMaintenanceScheduler starts the background maintenance jobs.
// Dropping an enrollment does not cascade to its result, so a daily sweep
// reclaims results whose enrollment is gone.
func InitializeMaintenanceScheduler(db *gorm.DB, spec string) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(spec, func() {
		removed, err := SweepOrphanedEnrollments(db)
		if err != nil {
			log.Printf("[MAINTENANCE] Orphaned enrollment sweep failed: %v", err)
		} else {
			log.Printf("[MAINTENANCE] Orphaned enrollment sweep removed %d rows", removed)
		}

		removed, err = SweepOrphanedResults(db)
		if err != nil {
			log.Printf("[MAINTENANCE] Orphaned result sweep failed: %v", err)
			return
		}
		log.Printf("[MAINTENANCE] Orphaned result sweep removed %d rows", removed)
	}); err != nil {
		log.Printf("[MAINTENANCE] Invalid sweep schedule %q: %v", spec, err)
		return c
	}

	c.Start()
	log.Printf("[MAINTENANCE] Maintenance scheduler started (sweep: %q)", spec)
	return c
}

// SweepOrphanedResults hard-deletes results whose enrollment no longer exists
func SweepOrphanedResults(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where("enrollment_id NOT IN (?)", db.Model(&models.Enrollment{}).Select("id")).
		Delete(&models.Result{})
	return res.RowsAffected, res.Error
}

// SweepOrphanedEnrollments hard-deletes enrollments whose course or student
// was removed out from under them
func SweepOrphanedEnrollments(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where(
			"course_id NOT IN (?) OR student_id NOT IN (?)",
			db.Model(&models.Course{}).Select("id"),
			db.Model(&models.User{}).Select("id"),
		).
		Delete(&models.Enrollment{})
	return res.RowsAffected, res.Error
}

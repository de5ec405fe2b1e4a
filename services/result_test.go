package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-backend/models"
)

func setupEnrollment(t *testing.T) (*EnrollmentService, *ResultService, *models.EnrollmentView) {
	t.Helper()
	db := setupTestDB(t)

	student := createStudent(t, db, "alice@example.edu", "alice")
	course := createCourse(t, db, "CS101", "Data Structures", 30)

	enrollments := NewEnrollmentService(db)
	view, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	return enrollments, NewResultService(db), view
}

func TestResultUpsert(t *testing.T) {
	_, results, enrollment := setupEnrollment(t)

	t.Run("lookup before any upsert", func(t *testing.T) {
		_, err := results.ByEnrollment(enrollment.ID)
		assert.ErrorIs(t, err, ErrResultNotFound)
	})

	marks := 95.5
	created, err := results.Upsert(enrollment.ID, "A", &marks)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, created.EnrollmentID)
	assert.Equal(t, "A", created.Grade)
	require.NotNil(t, created.Marks)
	assert.Equal(t, 95.5, *created.Marks)

	t.Run("readback", func(t *testing.T) {
		got, err := results.ByEnrollment(enrollment.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Grade)
		require.NotNil(t, got.Marks)
		assert.Equal(t, 95.5, *got.Marks)
	})

	t.Run("second upsert updates in place", func(t *testing.T) {
		newMarks := 72.0
		updated, err := results.Upsert(enrollment.ID, "C", &newMarks)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID, "upsert must reuse the existing row")
		assert.Equal(t, "C", updated.Grade)
	})
}

func TestResultSingleRowPerEnrollment(t *testing.T) {
	db := setupTestDB(t)

	student := createStudent(t, db, "alice@example.edu", "alice")
	course := createCourse(t, db, "CS101", "Data Structures", 30)

	enrollments := NewEnrollmentService(db)
	results := NewResultService(db)

	view, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	grades := []string{"F", "D", "B", "A"}
	for _, grade := range grades {
		_, err := results.Upsert(view.ID, grade, nil)
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Result{}).Where("enrollment_id = ?", view.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := results.ByEnrollment(view.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Grade)
}

func TestResultUpsertConvergesOnExistingRow(t *testing.T) {
	db := setupTestDB(t)

	student := createStudent(t, db, "alice@example.edu", "alice")
	course := createCourse(t, db, "CS101", "Data Structures", 30)

	enrollments := NewEnrollmentService(db)
	results := NewResultService(db)

	view, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	// Row inserted behind the service's back, like a concurrent winner's
	existing := models.Result{EnrollmentID: view.ID, Grade: "B"}
	require.NoError(t, db.Create(&existing).Error)

	marks := 91.0
	updated, err := results.Upsert(view.ID, "A", &marks)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "A", updated.Grade)

	var count int64
	require.NoError(t, db.Model(&models.Result{}).Where("enrollment_id = ?", view.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResultNullMarks(t *testing.T) {
	_, results, enrollment := setupEnrollment(t)

	created, err := results.Upsert(enrollment.ID, "I", nil)
	require.NoError(t, err)
	assert.Nil(t, created.Marks)
}

func TestResultUnknownEnrollment(t *testing.T) {
	_, results, _ := setupEnrollment(t)

	_, err := results.Upsert(9999, "A", nil)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	_, err = results.ByEnrollment(9999)
	assert.ErrorIs(t, err, ErrResultNotFound)
}

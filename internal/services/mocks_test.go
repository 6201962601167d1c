package services

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
)

// fakeRepository is an in-memory Repository for service tests. Transactions
// run the callback against the same store.
type fakeRepository struct {
	users       []*models.User
	courses     []*models.Course
	enrollments []*models.Enrollment
	marks       []*models.Mark
	videos      []*models.Video

	nextID uint

	userCreateErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{}
}

func (f *fakeRepository) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRepository) User() repositories.UserRepository             { return &fakeUserRepo{f} }
func (f *fakeRepository) Course() repositories.CourseRepository         { return &fakeCourseRepo{f} }
func (f *fakeRepository) Enrollment() repositories.EnrollmentRepository { return &fakeEnrollmentRepo{f} }
func (f *fakeRepository) Mark() repositories.MarkRepository             { return &fakeMarkRepo{f} }
func (f *fakeRepository) Video() repositories.VideoRepository           { return &fakeVideoRepo{f} }

func (f *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(f)
}

func (f *fakeRepository) Ping(ctx context.Context) error { return nil }
func (f *fakeRepository) Close() error                   { return nil }

type fakeUserRepo struct{ f *fakeRepository }

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if r.f.userCreateErr != nil {
		return r.f.userCreateErr
	}
	user.ID = r.f.id()
	r.f.users = append(r.f.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range r.f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByIndexNumber(ctx context.Context, indexNumber string) (*models.User, error) {
	for _, u := range r.f.users {
		if u.IndexNumber == indexNumber {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) MaxIndexNumber(ctx context.Context) (int64, bool, error) {
	var max int64
	found := false
	for _, u := range r.f.users {
		n, err := strconv.ParseInt(u.IndexNumber, 10, 64)
		if err != nil {
			continue
		}
		if !found || n > max {
			max = n
		}
		found = true
	}
	return max, found, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	for i, u := range r.f.users {
		if u.ID == user.ID {
			r.f.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	return r.f.users, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCourseRepo struct{ f *fakeRepository }

func (r *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	course.ID = r.f.id()
	r.f.courses = append(r.f.courses, course)
	return nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	for _, c := range r.f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCourseRepo) List(ctx context.Context) ([]*models.Course, error) {
	return r.f.courses, nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id uint) error {
	for i, c := range r.f.courses {
		if c.ID == id {
			r.f.courses = append(r.f.courses[:i], r.f.courses[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeEnrollmentRepo struct{ f *fakeRepository }

func (r *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	enrollment.ID = r.f.id()
	r.f.enrollments = append(r.f.enrollments, enrollment)
	return nil
}

func (r *fakeEnrollmentRepo) ExistsByUserAndCourse(ctx context.Context, userID, courseID uint) (bool, error) {
	for _, e := range r.f.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEnrollmentRepo) ListByUser(ctx context.Context, userID uint) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range r.f.enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeMarkRepo struct{ f *fakeRepository }

func (r *fakeMarkRepo) Create(ctx context.Context, mark *models.Mark) error {
	mark.ID = r.f.id()
	r.f.marks = append(r.f.marks, mark)
	return nil
}

func (r *fakeMarkRepo) ListByUser(ctx context.Context, userID uint) ([]*models.Mark, error) {
	var out []*models.Mark
	for _, m := range r.f.marks {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMarkRepo) ListAll(ctx context.Context) ([]*models.Mark, error) {
	return r.f.marks, nil
}

type fakeVideoRepo struct{ f *fakeRepository }

func (r *fakeVideoRepo) Create(ctx context.Context, video *models.Video) error {
	video.ID = r.f.id()
	r.f.videos = append(r.f.videos, video)
	return nil
}

func (r *fakeVideoRepo) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	for _, v := range r.f.videos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVideoRepo) List(ctx context.Context) ([]*models.Video, error) {
	return r.f.videos, nil
}

func (r *fakeVideoRepo) Delete(ctx context.Context, id uint) error {
	for i, v := range r.f.videos {
		if v.ID == id {
			r.f.videos = append(r.f.videos[:i], r.f.videos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

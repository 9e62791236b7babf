package database

import (
	"context"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"unischedule_backend/internals/configs"
	classroommodel "unischedule_backend/internals/features/academics/classrooms/model"
	coursemodel "unischedule_backend/internals/features/academics/courses/model"
	timeslotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	attendancemodel "unischedule_backend/internals/features/attendance/attendances/model"
	commentmodel "unischedule_backend/internals/features/comments/comments/model"
	routinemodel "unischedule_backend/internals/features/scheduling/routines/model"
	usermodel "unischedule_backend/internals/features/users/user/model"
)

// Connect opens the Postgres pool described by cfg.
func Connect(cfg *configs.Config) (*gorm.DB, error) {
	log.Println("[INFO] connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // safe behind PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}
	log.Println("[INFO] database connected")
	return db, nil
}

// TunePool bounds the underlying sql.DB pool.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates every table. The four named unique constraints on
// class_routines are part of the durable schema contract; their names are
// surfaced to API consumers as conflict discriminants.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&usermodel.UserModel{},
		&classroommodel.ClassroomModel{},
		&coursemodel.CourseModel{},
		&timeslotmodel.TimeSlotModel{},
		&routinemodel.ClassRoutineModel{},
		&attendancemodel.AttendanceModel{},
		&commentmodel.CommentModel{},
	)
}

/* =======================
   GORM logger
   ======================= */

type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | rows=%d | %s", elapsed, err, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[WARN] SLOW %s | rows=%d | %s", elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[INFO] %s | rows=%d | %s", elapsed, rows, sql)
	}
}

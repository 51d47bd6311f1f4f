package services

// Services defined in this package:
// - AuthService: registration, login, token rotation and profile management
// - SemesterService: semester CRUD and the current-semester flag
// - CourseService: course and schedule slot CRUD within a semester
// - ImportService: Neptun spreadsheet import pipeline
// - CalendarService: occurrence expansion for day/week/month views
// - ExportService: ics/xlsx/csv/pdf schedule downloads
// - NotificationService: per-user notifications

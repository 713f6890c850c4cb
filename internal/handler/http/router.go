package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hr-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Period     PeriodHandler
	Schedule   ScheduleHandler
	Payroll    PayrollHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", h.Auth.Logout)
				r.Get("/user", h.Auth.CurrentUser)
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/stats", h.Employee.EmployeeStats)
				r.Get("/pending", h.Employee.ListPendingEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Patch("/{id}/activate", h.Employee.ActivateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListAttendance)
				r.Get("/today", h.Attendance.TodayAttendance)
				r.Get("/stats", h.Attendance.AttendanceStats)
				r.Get("/{id}", h.Attendance.GetAttendance)
				r.Post("/", h.Attendance.CreateAttendance)
				r.Post("/clock", h.Attendance.Clock)
				r.Put("/{id}", h.Attendance.UpdateAttendance)
				r.Delete("/{id}", h.Attendance.DeleteAttendance)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.ListLeaves)
				r.Get("/pending", h.Leave.ListPendingLeaves)
				r.Get("/stats", h.Leave.LeaveStats)
				r.Get("/{id}", h.Leave.GetLeave)
				r.Post("/", h.Leave.CreateLeave)
				r.Put("/{id}", h.Leave.UpdateLeave)
				r.Delete("/{id}", h.Leave.DeleteLeave)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/approve", h.Leave.ApproveLeave)
					r.Patch("/{id}/reject", h.Leave.RejectLeave)
				})
			})

			r.Route("/periods", func(r chi.Router) {
				r.Get("/", h.Period.ListPeriods)
				r.Get("/{id}", h.Period.GetPeriod)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Period.CreatePeriod)
					r.Patch("/{id}/status", h.Period.UpdatePeriodStatus)
					r.Delete("/{id}", h.Period.DeletePeriod)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.ListSchedules)
				r.Get("/{id}", h.Schedule.GetSchedule)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Schedule.CreateSchedule)
					r.Put("/{id}", h.Schedule.UpdateSchedule)
					r.Delete("/{id}", h.Schedule.DeleteSchedule)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.ListPayroll)
				r.Get("/stats", h.Payroll.PayrollStats)
				r.Get("/{id}", h.Payroll.GetPayroll)
				r.Get("/{id}/payslip", h.Payroll.GetPayslip)
				r.Get("/{id}/payslip/pdf", h.Payroll.GetPayslipPDF)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/process", h.Payroll.ProcessPayroll)
					r.Put("/{id}", h.Payroll.UpdatePayroll)
					r.Delete("/{id}", h.Payroll.DeletePayroll)
				})
			})
		})
	})

	return r
}

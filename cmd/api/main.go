package main

import (
	"fmt"
	"net/http"

	"github.com/peoplecore/hr-backend-go/internal/config"
	appHTTP "github.com/peoplecore/hr-backend-go/internal/handler/http"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
	"github.com/peoplecore/hr-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplecore/hr-backend-go/internal/service/attendance"
	authService "github.com/peoplecore/hr-backend-go/internal/service/auth"
	employeeService "github.com/peoplecore/hr-backend-go/internal/service/employee"
	leaveService "github.com/peoplecore/hr-backend-go/internal/service/leave"
	payrollService "github.com/peoplecore/hr-backend-go/internal/service/payroll"
	periodService "github.com/peoplecore/hr-backend-go/internal/service/period"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	periodSvc := periodService.NewPeriodService(periodRepo, scheduleRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceRepo, periodRepo, cfg.Payroll)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Period:     appHTTP.NewPeriodHandler(periodSvc),
		Schedule:   appHTTP.NewScheduleHandler(periodSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	}, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

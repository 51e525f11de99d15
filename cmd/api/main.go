package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kelora-hr/kelora-backend-go/internal/config"
	appHTTP "github.com/kelora-hr/kelora-backend-go/internal/handler/http"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/database"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/jwt"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/oauth"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/storage"
	"github.com/kelora-hr/kelora-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kelora-hr/kelora-backend-go/internal/service/attendance"
	authService "github.com/kelora-hr/kelora-backend-go/internal/service/auth"
	documentService "github.com/kelora-hr/kelora-backend-go/internal/service/document"
	employeeService "github.com/kelora-hr/kelora-backend-go/internal/service/employee"
	feedbackService "github.com/kelora-hr/kelora-backend-go/internal/service/feedback"
	"github.com/kelora-hr/kelora-backend-go/internal/service/file"
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

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	checkinRepo := postgresql.NewCheckinRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, tokenRepo, googleSvc)
	checkinSvc := attendanceService.NewCheckinService(db, checkinRepo, cfg.App.Timezone)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileSvc)
	documentSvc := documentService.NewDocumentService(documentRepo, fileSvc)
	feedbackSvc := feedbackService.NewFeedbackService(feedbackRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(checkinSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	documentHandler := appHTTP.NewDocumentHandler(documentSvc)
	feedbackHandler := appHTTP.NewFeedbackHandler(feedbackSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		attendanceHandler,
		employeeHandler,
		documentHandler,
		feedbackHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zhixunlab/consult-booking/internal/config"
	"github.com/zhixunlab/consult-booking/internal/handlers"
	infraRepo "github.com/zhixunlab/consult-booking/internal/infra/repository"
	"github.com/zhixunlab/consult-booking/internal/sms"
	ucAccount "github.com/zhixunlab/consult-booking/internal/usecase/account"
	ucBooking "github.com/zhixunlab/consult-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	codeStore := sms.NewCodeStore(cfg.CodeTTL)
	smsDispatcher := sms.NewDispatcher(sms.LogSender{})

	RegisterRoutesWith(r, db, codeStore, smsDispatcher)
}

// RegisterRoutesWith wires the API with caller-provided SMS collaborators.
func RegisterRoutesWith(
	r *gin.Engine,
	db *gorm.DB,
	codeStore *sms.CodeStore,
	smsDispatcher *sms.Dispatcher,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(userRepo, codeStore)
	loginUC := ucAccount.NewLogin(userRepo)
	getUserUC := ucAccount.NewGetUser(userRepo)
	sendCodeUC := ucAccount.NewSendCode(codeStore, smsDispatcher)

	createBookingUC := ucBooking.NewCreate(bookingRepo)
	listBookingsUC := ucBooking.NewListByUser(bookingRepo)
	bookingDetailUC := ucBooking.NewDetail(bookingRepo)
	cancelBookingUC := ucBooking.NewCancel(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerUC,
		loginUC,
		getUserUC,
		sendCodeUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		bookingDetailUC,
		cancelBookingUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/send_code", authHandler.SendCode)
		api.GET("/user_info", authHandler.UserInfo)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		booking := api.Group("/booking")
		{
			booking.POST("/create", bookingHandler.Create)
			booking.GET("/list", bookingHandler.List)
			booking.GET("/detail", bookingHandler.Detail)
			booking.POST("/cancel", bookingHandler.Cancel)
		}
	}
}

package routes

import (
	"net/http"

	"sitecms_be/config"
	"sitecms_be/controller"
	"sitecms_be/controller/akun"
	"sitecms_be/controller/auth"
	"sitecms_be/controller/banner"
	"sitecms_be/controller/image"
	"sitecms_be/controller/member"
	"sitecms_be/controller/menu"
	"sitecms_be/controller/service"
	"sitecms_be/controller/testimonial"
	"sitecms_be/helper/at"
	"sitecms_be/helper/watoken"
	"sitecms_be/model"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// InitializeRoutes wires every handler onto the router. The store handles come
// in from main; no controller reaches for a global connection.
func InitializeRoutes(mongoDB *mongo.Database, pgDB *gorm.DB) *mux.Router {
	router := mux.NewRouter()
	router.Use(config.CORSMiddleware)

	menuH := menu.NewHandler(mongoDB)
	bannerH := banner.NewHandler(mongoDB)
	serviceH := service.NewHandler(mongoDB)
	testimonialH := testimonial.NewHandler(mongoDB)
	memberH := member.NewHandler(mongoDB)
	authH := auth.NewHandler(pgDB)
	akunH := akun.NewHandler(pgDB)

	// Root route
	router.HandleFunc("/", controller.GetHome).Methods("GET", "OPTIONS")

	// Auth
	router.HandleFunc("/regis", authH.RegisterUser).Methods("POST", "OPTIONS")
	router.HandleFunc("/login", authH.LoginUsers).Methods("POST", "OPTIONS")
	router.HandleFunc("/login/google", authH.LoginWithGoogle).Methods("POST", "OPTIONS")
	router.HandleFunc("/reset-password", authH.ResetPassword).Methods("POST", "OPTIONS")

	// Menu
	router.HandleFunc("/create/menu", requireLogin(menuH.CreateMenu)).Methods("POST", "OPTIONS")
	router.HandleFunc("/menu", menuH.GetMenus).Methods("GET", "OPTIONS")
	router.HandleFunc("/menu/by-id", menuH.GetMenuByID).Methods("GET", "OPTIONS")
	router.HandleFunc("/update/menu", requireLogin(menuH.UpdateMenu)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/move/menu", requireLogin(menuH.MoveMenu)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/delete/menu", requireLogin(menuH.DeleteMenu)).Methods("DELETE", "OPTIONS")

	// Banner
	router.HandleFunc("/create/banner", requireLogin(bannerH.CreateBanner)).Methods("POST", "OPTIONS")
	router.HandleFunc("/banner", bannerH.GetAllBanners).Methods("GET", "OPTIONS")
	router.HandleFunc("/banner/by-id", bannerH.GetBannerByID).Methods("GET", "OPTIONS")
	router.HandleFunc("/update/banner", requireLogin(bannerH.UpdateBanner)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/delete/banner", requireLogin(bannerH.DeleteBanner)).Methods("DELETE", "OPTIONS")

	// Service
	router.HandleFunc("/create/service", requireLogin(serviceH.CreateService)).Methods("POST", "OPTIONS")
	router.HandleFunc("/service", serviceH.GetAllServices).Methods("GET", "OPTIONS")
	router.HandleFunc("/service/by-id", serviceH.GetServiceByID).Methods("GET", "OPTIONS")
	router.HandleFunc("/service/by-slug", serviceH.GetServiceBySlug).Methods("GET", "OPTIONS")
	router.HandleFunc("/update/service", requireLogin(serviceH.UpdateService)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/delete/service", requireLogin(serviceH.DeleteService)).Methods("DELETE", "OPTIONS")

	// Testimonial
	router.HandleFunc("/create/testimonial", requireLogin(testimonialH.CreateTestimonial)).Methods("POST", "OPTIONS")
	router.HandleFunc("/testimonial", testimonialH.GetAllTestimonials).Methods("GET", "OPTIONS")
	router.HandleFunc("/testimonial/by-id", testimonialH.GetTestimonialByID).Methods("GET", "OPTIONS")
	router.HandleFunc("/update/testimonial", requireLogin(testimonialH.UpdateTestimonial)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/delete/testimonial", requireLogin(testimonialH.DeleteTestimonial)).Methods("DELETE", "OPTIONS")

	// Member
	router.HandleFunc("/create/member", requireLogin(memberH.CreateMember)).Methods("POST", "OPTIONS")
	router.HandleFunc("/member", memberH.GetAllMembers).Methods("GET", "OPTIONS")
	router.HandleFunc("/member/by-id", memberH.GetMemberByID).Methods("GET", "OPTIONS")
	router.HandleFunc("/update/member", requireLogin(memberH.UpdateMember)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/delete/member", requireLogin(memberH.DeleteMember)).Methods("DELETE", "OPTIONS")

	// Account management
	router.HandleFunc("/all/akun", requireLogin(akunH.GetAllAkun)).Methods("GET", "OPTIONS")
	router.HandleFunc("/get/akun", requireLogin(akunH.GetById)).Methods("GET", "OPTIONS")
	router.HandleFunc("/add/akun", requireLogin(akunH.AddAkun)).Methods("POST", "OPTIONS")
	router.HandleFunc("/update/akun", requireLogin(akunH.EditDataAkun)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/delete/akun", requireLogin(akunH.DeleteAkun)).Methods("DELETE", "OPTIONS")

	// Upload
	router.HandleFunc("/upload/image", image.UploadImage).Methods("PUT", "OPTIONS")

	return router
}

// requireLogin guards write endpoints with the paseto token from the Login
// header.
func requireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := watoken.Decode(config.PublicKey, at.GetLoginFromHeader(r)); err != nil {
			at.WriteJSON(w, http.StatusUnauthorized, model.Fail(http.StatusUnauthorized, "Invalid or expired token. Please log in again."))
			return
		}
		next(w, r)
	}
}

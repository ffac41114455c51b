package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"net/http"

	"github.com/mindease/mindease-api/internal/adapter/api/controller"
	"github.com/mindease/mindease-api/internal/adapter/api/route"
	"github.com/mindease/mindease-api/internal/adapter/repository"
	"github.com/mindease/mindease-api/internal/infrastructure/config"
	"github.com/mindease/mindease-api/internal/infrastructure/database"
	"github.com/mindease/mindease-api/pkg/auth"
	"github.com/mindease/mindease-api/pkg/completion"
	"github.com/mindease/mindease-api/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	config               *config.Config
	router               *gin.Engine
	db                   *pgxpool.Pool
	logger               logger.Logger
	authController       *controller.AuthController
	profileController    *controller.ProfileController
	roleController       *controller.RoleController
	chatController       *controller.ChatController
	discussionController *controller.DiscussionController
	flagController       *controller.FlagController
	moodController       *controller.MoodController
	authMiddleware       gin.HandlerFunc
}

// NewApp cria uma nova instância do aplicativo
func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	discussionRepo := repository.NewDiscussionRepository(db)
	flagRepo := repository.NewFlagRepository(db)
	moodRepo := repository.NewMoodRepository(db)

	// Criar serviço JWT e middleware de autenticação
	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}
	authMiddleware := auth.Middleware(jwtService)

	// Criar cliente da API de completions
	completer, err := completion.NewClient(cfg, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar controllers
	authController := controller.NewAuthController(userRepo, roleRepo, jwtService)
	profileController := controller.NewProfileController(userRepo)
	roleController := controller.NewRoleController(roleRepo)
	chatController := controller.NewChatController(completer, log)
	discussionController := controller.NewDiscussionController(discussionRepo, userRepo, roleRepo)
	flagController := controller.NewFlagController(flagRepo, roleRepo)
	moodController := controller.NewMoodController(moodRepo, completer)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())

	// CORS permissivo; o preflight OPTIONS responde 200 com corpo vazio
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"authorization", "x-client-info", "apikey", "content-type"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	return &App{
		config:               cfg,
		router:               router,
		db:                   db,
		logger:               log,
		authController:       authController,
		profileController:    profileController,
		roleController:       roleController,
		chatController:       chatController,
		discussionController: discussionController,
		flagController:       flagController,
		moodController:       moodController,
		authMiddleware:       authMiddleware,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Rotas públicas
	route.SetupAuthRoutes(api, a.authController)
	route.SetupChatRoutes(api, a.chatController)

	// Rotas autenticadas
	route.SetupProfileRoutes(api, a.profileController, a.authMiddleware)
	route.SetupRoleRoutes(api, a.roleController, a.authMiddleware)
	route.SetupDiscussionRoutes(api, a.discussionController, a.authMiddleware)
	route.SetupFlagRoutes(api, a.flagController, a.authMiddleware)
	route.SetupMoodRoutes(api, a.moodController, a.authMiddleware)

	// Documentação da API
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Run inicia o servidor HTTP
func (a *App) Run() error {
	return a.router.Run(":" + a.config.ServerPort)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

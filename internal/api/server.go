package api

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/paroquia-digital/bingo-storefront/docs"
	v1 "github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1"
	"github.com/paroquia-digital/bingo-storefront/internal/api/middleware"
	"github.com/paroquia-digital/bingo-storefront/internal/backend"
	"github.com/paroquia-digital/bingo-storefront/internal/config"
	"github.com/paroquia-digital/bingo-storefront/internal/monitoring"
	"github.com/paroquia-digital/bingo-storefront/internal/selection"
	"github.com/paroquia-digital/bingo-storefront/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, client *backend.Client, redisClient *redis.Client) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	eventos := service.NewEventoService(client)
	vendas := service.NewVendaService(client)
	store := selection.NewStore(redisClient, conf.API.HandoffTTL)
	tokens := selection.NewTokens(conf.API.HandoffSigningKey, conf.API.HandoffTTL)

	eventoHandler := v1.NewEventoHandler(eventos)
	selecaoHandler := v1.NewSelecaoHandler(eventos, store, tokens, conf.Loja)
	compraHandler := v1.NewCompraHandler(eventos, vendas, store, tokens, conf.Loja)
	pagamentoHandler := v1.NewPagamentoHandler(vendas, conf.Loja)
	acompanharHandler := v1.NewAcompanharHandler(vendas, conf.Loja)
	resultadoHandler := v1.NewResultadoHandler(vendas, conf.Loja)

	s.MountHandlers(eventoHandler, selecaoHandler, compraHandler, pagamentoHandler, acompanharHandler, resultadoHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(monitoring.Middleware())
}

func (s *Server) MountHandlers(
	eventoHandler *v1.EventoHandler,
	selecaoHandler *v1.SelecaoHandler,
	compraHandler *v1.CompraHandler,
	pagamentoHandler *v1.PagamentoHandler,
	acompanharHandler *v1.AcompanharHandler,
	resultadoHandler *v1.ResultadoHandler,
) {
	const basePath = "/api/v1"

	loja := s.Router.Group(basePath + "/loja")
	{
		loja.GET("/eventos", eventoHandler.HandleGetEventos)
		loja.GET("/eventos/:eventoID", eventoHandler.HandleGetEvento)

		loja.GET("/eventos/:eventoID/selecao", selecaoHandler.HandleGetSelecao)
		loja.POST("/eventos/:eventoID/selecao/cartelas", selecaoHandler.HandleAtualizarSelecao)
		loja.POST("/eventos/:eventoID/selecao/prosseguir", selecaoHandler.HandleProsseguir)

		loja.GET("/eventos/:eventoID/comprar", compraHandler.HandleGetComprar)
		loja.POST("/eventos/:eventoID/comprar", compraHandler.HandleCriarVenda)

		loja.GET("/vendas/:vendaID/pagamento", pagamentoHandler.HandleGetPagamento)
		loja.GET("/vendas/:vendaID/status", pagamentoHandler.HandleGetStatus)
		loja.GET("/vendas/:vendaID/acompanhar", acompanharHandler.HandleAcompanhar)

		loja.GET("/vendas/:vendaID/sucesso", resultadoHandler.HandleGetSucesso)
		loja.POST("/vendas/:vendaID/reenviar-email", resultadoHandler.HandleReenviarEmail)
		loja.GET("/vendas/:vendaID/erro", resultadoHandler.HandleGetErro)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", monitoring.Handler())

	// Unknown routes land on the home page model.
	s.Router.NoRoute(func(ctx *gin.Context) {
		ctx.Redirect(http.StatusTemporaryRedirect, "/")
	})

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Bingo Storefront API"
	docs.SwaggerInfo.Description = "Backend for the parish bingo card storefront."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

package app

import (
	"context"
	"fmt"

	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fsdevblog/parts-shop/internal/config"
	"github.com/fsdevblog/parts-shop/internal/repository/pgrepo"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/internal/service"
	"github.com/fsdevblog/parts-shop/internal/service/psswd"
	"github.com/fsdevblog/parts-shop/internal/transport/web"
	"github.com/fsdevblog/parts-shop/internal/transport/web/render"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	hasher := psswd.PasswordHash("")

	if seedErr := pgrepo.Seed(notifyCtx, unitOfWork, hasher, a.Logger); seedErr != nil {
		return fmt.Errorf("app run: %s", seedErr.Error())
	}

	// Режим -seed: схема применена, стартовые данные на месте, выходим.
	if a.Config.SeedOnly {
		a.Logger.Info("database initialized")
		return nil
	}

	services, sErr := service.Factory(unitOfWork, hasher)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	renderer, rendErr := render.New()
	if rendErr != nil {
		return fmt.Errorf("app run: %s", rendErr.Error())
	}

	router := web.New(web.RouterArgs{
		Logger:        a.Logger,
		UserService:   services.UserService,
		AdminService:  services.AdminService,
		PartService:   services.PartService,
		OrderService:  services.OrderService,
		Renderer:      renderer,
		SessionSecret: []byte(a.Config.SessionSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// admin repo
	adminRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewAdminRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.AdminRepoName), adminRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// part repo
	partRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewPartRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.PartRepoName), partRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// order repo
	orderRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewOrderRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.OrderRepoName), orderRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}

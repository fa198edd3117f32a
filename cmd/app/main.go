package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"kitchen/cmd"
	"kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/notifier"
	"kitchen/internal/adapters/out/postgres/chefrepo"
	"kitchen/internal/adapters/out/postgres/menurepo"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/tablerepo"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/ports"
	"kitchen/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var defaultChefNames = []string{"Antonio", "Maria", "Kenji", "Amelie"}

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)

	notifyPort := createNotifier(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, notifyPort, logger)

	seedChefs(&app, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCompleteDueOrdersCommandHandler(),
		app.CreateNotifyOverdueOrdersCommandHandler(),
		configs.OverdueThresholdMinutes,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		AMQPURL:                 goDotEnvVariable("AMQP_URL"),
		OverdueThresholdMinutes: goDotEnvIntVariable("OVERDUE_THRESHOLD_MINUTES", 15),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&chefrepo.ChefDTO{},
		&chefrepo.ChefOrderDTO{},
		&tablerepo.TableDTO{},
		&menurepo.MenuItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func createNotifier(configs cmd.Config, logger *slog.Logger) ports.Notifier {
	if configs.AMQPURL == "" {
		return notifier.NewLogNotifier(logger)
	}

	amqpNotifier, err := notifier.NewAMQPNotifier(configs.AMQPURL)
	if err != nil {
		logger.Warn("amqp notifier unavailable, falling back to log notifier", "error", err)
		return notifier.NewLogNotifier(logger)
	}
	return amqpNotifier
}

// seedChefs fills an empty roster with a default crew so the dispatcher has
// someone to hand the first orders to.
func seedChefs(app *cmd.CompositionRoot, logger *slog.Logger) {
	ctx := context.Background()

	getAllChefs := app.CreateGetAllChefsQueryHandler()
	existing, err := getAllChefs.Handle(ctx, queries.NewGetAllChefsQuery())
	if err != nil {
		log.Fatalf("Error reading chef roster: %v", err)
	}
	if len(existing) > 0 {
		return
	}

	createChef := app.CreateCreateChefCommandHandler()
	for _, name := range defaultChefNames {
		command, cmdErr := commands.NewCreateChefCommand(name)
		if cmdErr != nil {
			log.Fatalf("Error building chef seed: %v", cmdErr)
		}

		if _, handleErr := createChef.Handle(ctx, command); handleErr != nil {
			log.Fatalf("Error seeding chef %s: %v", name, handleErr)
		}
	}

	logger.Info("seeded default chef roster", "count", len(defaultChefNames))
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := http.NewServer(http.Handlers{
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: app.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       app.CreateDeleteOrderCommandHandler(),
		AssignChef:        app.CreateAssignChefCommandHandler(),
		CreateChef:        app.CreateCreateChefCommandHandler(),
		RemoveChef:        app.CreateRemoveChefCommandHandler(),
		CreateTable:       app.CreateCreateTableCommandHandler(),
		RemoveTable:       app.CreateRemoveTableCommandHandler(),
		ReserveTable:      app.CreateReserveTableCommandHandler(),
		ReleaseTable:      app.CreateReleaseTableCommandHandler(),
		CreateMenuItem:    app.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:    app.CreateUpdateMenuItemCommandHandler(),
		RemoveMenuItem:    app.CreateRemoveMenuItemCommandHandler(),

		GetOrders:           app.CreateGetOrdersQueryHandler(),
		GetOrder:            app.CreateGetOrderQueryHandler(),
		GetProcessingOrders: app.CreateGetProcessingOrdersQueryHandler(),
		GetAllChefs:         app.CreateGetAllChefsQueryHandler(),
		GetChef:             app.CreateGetChefQueryHandler(),
		GetTables:           app.CreateGetTablesQueryHandler(),
		GetMenuItems:        app.CreateGetMenuItemsQueryHandler(),
		GetMenuItem:         app.CreateGetMenuItemQueryHandler(),
		GetDashboard:        app.CreateGetDashboardMetricsQueryHandler(),
	}, configs.OverdueThresholdMinutes)

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

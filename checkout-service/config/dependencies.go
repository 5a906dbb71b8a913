package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/draftea/checkout-system/checkout-service/application"
	"github.com/draftea/checkout-system/checkout-service/handlers"
	"github.com/draftea/checkout-system/checkout-service/infrastructure"
	"github.com/draftea/checkout-system/shared/events"
	sharedinfra "github.com/draftea/checkout-system/shared/infrastructure"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/draftea/checkout-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	CheckoutRepository *infrastructure.PostgresCheckoutRepository
	EventStore         *sharedinfra.PostgresEventStore

	// Sessions
	Sessions     *application.SessionRegistry
	Consignments *infrastructure.ConsignmentHub
	Hosts        *infrastructure.HostHub
	StepEvents   *infrastructure.StepEventRecorder

	// Use Cases
	StartCheckout        *application.StartCheckout
	GetSession           *application.GetSession
	EndCheckout          *application.EndCheckout
	DispatchAction       *application.DispatchAction
	CheckEmbeddedSupport *application.CheckEmbeddedSupport

	// HTTP Handlers
	CheckoutHandlers *handlers.CheckoutHandlers
	HostHandlers     *handlers.HostHandlers

	// Event Handlers
	CheckoutEventHandlers *handlers.CheckoutEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSEventPublisher
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry first
	telConfig := telemetry.CheckoutServiceConfig.WithVersion(config.Version)
	if config.Telemetry.Enabled {
		tel, shutdown, err := telemetry.InitTelemetry(ctx, telConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint))
		if err != nil {
			// Continue without telemetry rather than failing
			slog.Warn("Failed to initialize telemetry", logging.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = shutdown
		}
	}
	if deps.Telemetry == nil {
		deps.Telemetry = telemetry.NewTelemetry(telConfig)
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	deps.CheckoutRepository = infrastructure.NewPostgresCheckoutRepository(db)
	deps.EventStore = sharedinfra.NewPostgresEventStore(db)

	// Initialize AWS infrastructure
	awsConfig := sharedinfra.AWSConfig{
		Region:          config.AWS.Region,
		Endpoint:        config.AWS.Endpoint,
		AccessKeyID:     config.AWS.AccessKeyID,
		SecretAccessKey: config.AWS.SecretAccessKey,
	}
	awsCfg, err := sharedinfra.LoadAWSConfig(ctx, awsConfig)
	if err != nil {
		db.Close()
		return nil, err
	}
	deps.EventPublisher = sharedinfra.NewSNSEventPublisher(
		sharedinfra.NewSNSClient(awsCfg, awsConfig), config.AWS.SNSTopicArn)
	deps.EventSubscriber = sharedinfra.NewSQSSubscriberAdapter(
		sharedinfra.NewSQSClient(awsCfg, awsConfig), config.AWS.SQSQueueURL,
		sharedinfra.WithWorkers(config.Subscriber.Workers),
		sharedinfra.WithReaders(config.Subscriber.Readers),
	)

	// Step tracking sinks
	var (
		publisher events.Publisher
		store     events.EventStore
	)
	if config.Tracking.Publish {
		publisher = deps.EventPublisher
	}
	if config.Tracking.Archive {
		store = deps.EventStore
	}
	deps.StepEvents = infrastructure.NewStepEventRecorder(publisher, store, config.Tracking.Buffer)

	errorLogger, err := infrastructure.NewErrorLogger(slog.Default(), deps.Telemetry)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create error logger: %w", err)
	}

	// Sessions
	deps.Sessions = application.NewSessionRegistry()
	deps.Consignments = infrastructure.NewConsignmentHub()
	deps.Hosts = infrastructure.NewHostHub()

	// Initialize use cases
	deps.StartCheckout = application.NewStartCheckout(deps.Sessions, application.SessionDependencies{
		Loader:                     deps.CheckoutRepository,
		Consignments:               deps.Consignments,
		Trackers:                   deps.StepEvents,
		Hosts:                      deps.Hosts,
		ErrorLogger:                errorLogger,
		Brands:                     config.BrandCatalog(),
		UnsupportedEmbeddedMethods: config.Embedded.UnsupportedPaymentMethods,
	})
	deps.GetSession = application.NewGetSession(deps.Sessions)
	deps.EndCheckout = application.NewEndCheckout(deps.Sessions)
	deps.DispatchAction = application.NewDispatchAction(deps.Sessions)
	deps.CheckEmbeddedSupport = application.NewCheckEmbeddedSupport(deps.Sessions)

	// Initialize handlers
	deps.CheckoutHandlers = handlers.NewCheckoutHandlers(
		deps.StartCheckout,
		deps.GetSession,
		deps.EndCheckout,
		deps.DispatchAction,
		deps.CheckEmbeddedSupport,
		store,
	)
	deps.HostHandlers = handlers.NewHostHandlers(deps.Hosts)
	deps.CheckoutEventHandlers = handlers.NewCheckoutEventHandlers(deps.CheckoutRepository, deps.Consignments)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.Sessions != nil {
		d.Sessions.CloseAll()
	}

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}

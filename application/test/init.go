package test

import (
	"io/ioutil"
	"net/http"
	"strings"

	"checkout-gateway/application"
	"checkout-gateway/domain/incoming"
	"checkout-gateway/domain/repositories/mocks"
	"checkout-gateway/infrastructure/service/gateway"
	"checkout-gateway/utils/configs"
	logger2 "checkout-gateway/utils/logger"
)

const testAppKey = "test-app-key"

type MockService struct {
	Config             *configs.Config
	OrderRepository    *mocks.OrderRepository
	CardRepository     *mocks.CardRepository
	GatewayRepository  *mocks.GatewayRepository
	Queue              *mocks.IQueue
	Events             *mocks.IEvents
	Notifier           *mocks.INotifier
	GatewayApplication *application.GatewayApplication
}

// syncPool runs submitted tasks inline so mock expectations on background
// work stay deterministic.
type syncPool struct{}

func (syncPool) Submit(task func()) { task() }
func (syncPool) Release()           {}
func (syncPool) Running() int       { return 0 }

func NewTestGatewayApplication() *MockService {
	config := &configs.Config{
		Port:        "8080",
		ENV:         "staging",
		MaxPoolSize: 10,
		DBName:      "checkout_gateway_test",
		KafkaConfig: configs.Kafka{
			PaymentTopic: "order_events",
		},
		Gateway: configs.Gateway{
			BaseURL:     "https://api.gateway.test",
			Environment: "staging",
			AppId:       "app-id",
			AppKey:      testAppKey,
		},
		Store: configs.Store{
			CheckoutURL:          "https://shop.test/checkout",
			OrderConfirmationURL: "https://shop.test/order-received",
			PaymentMethodsURL:    "https://shop.test/my-account/payment-methods",
		},
		TelegramChannelId: configs.TelegramChannelId{
			Refund:  -100,
			Capture: -101,
			Cancel:  -102,
		},
	}

	logger, err := logger2.NewLogger("production")
	if err != nil {
		panic(err)
	}

	orderRepoMock := &mocks.OrderRepository{}
	cardRepoMock := &mocks.CardRepository{}
	gatewayRepoMock := &mocks.GatewayRepository{}
	queueMock := &mocks.IQueue{}
	eventsMock := &mocks.IEvents{}
	notifierMock := &mocks.INotifier{}

	return &MockService{
		Config:            config,
		OrderRepository:   orderRepoMock,
		CardRepository:    cardRepoMock,
		GatewayRepository: gatewayRepoMock,
		Queue:             queueMock,
		Events:            eventsMock,
		Notifier:          notifierMock,
		GatewayApplication: &application.GatewayApplication{
			Config:            config,
			Logger:            logger,
			Verifier:          incoming.NewVerifier(testAppKey, logger),
			OrderRepository:   orderRepoMock,
			CardRepository:    cardRepoMock,
			GatewayRepository: gatewayRepoMock,
			Queue:             queueMock,
			Events:            eventsMock,
			Notifier:          notifierMock,
			IPool:             syncPool{},
		},
	}
}

// makeResponse builds a gateway Response the way the client would from a
// remote exchange.
func makeResponse(statusCode int, body string, kind gateway.Kind) *gateway.Response {
	return gateway.Make(gateway.CallResult{
		HTTPResponse: &http.Response{
			StatusCode: statusCode,
			Body:       ioutil.NopCloser(strings.NewReader(body)),
		},
	}, nil, kind)
}

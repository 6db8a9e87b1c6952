package cmd

import (
	"ordering/internal/adapters/out/idgen"
	"ordering/internal/adapters/out/inmemory/orderrepo"
	"ordering/internal/adapters/out/pricingacl"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pricing"
)

// CompositionRoot wires the adapters into the use cases. All handlers share
// one in-memory repository and one id generator, so this is the single place
// where storage and policies are chosen.
type CompositionRoot struct {
	orderRepo *orderrepo.InMemoryOrderRepository
	idGen     idgen.RandomIDGenerator
	policy    order.DiscountPolicy
	spec      order.ConfirmationSpecification
}

// NewCompositionRoot builds the object graph for the given configuration.
// Config.DiscountPolicy "pricing" resolves codes through the pricing context's
// promotion catalog; any other value uses the local catalog.
func NewCompositionRoot(config Config) CompositionRoot {
	var policy order.DiscountPolicy
	if config.DiscountPolicy == "pricing" {
		policy = pricingacl.NewPricingDiscountPolicy(pricing.NewInMemoryPromotionCatalog())
	} else {
		policy = services.NewDiscountPolicyService()
	}

	return CompositionRoot{
		orderRepo: orderrepo.NewInMemoryOrderRepository(),
		idGen:     idgen.NewRandomIDGenerator(),
		policy:    policy,
		spec:      services.NewDefaultConfirmationSpecification(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo, c.idGen)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderRepo, c.idGen)
}

func (c *CompositionRoot) CreateChangeItemQuantityCommandHandler() commands.ChangeItemQuantityCommandHandler {
	return commands.NewChangeItemQuantityCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateApplyDiscountCommandHandler() commands.ApplyDiscountCommandHandler {
	return commands.NewApplyDiscountCommandHandler(c.orderRepo, c.policy)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderRepo, c.spec)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.orderRepo)
}

package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService     AuthService
	SessionService  SessionService
	UserService     UserService
	MarketService   MarketService
	ProductService  ProductService
	CategoryService CategoryService
}

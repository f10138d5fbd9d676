package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	SessionHandler  *SessionHandler
	UserHandler     *UserHandler
	MarketHandler   *MarketHandler
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
}

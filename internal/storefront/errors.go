package storefront

import "errors"

var (
	// ErrUnknownOption is returned when a request names a group, option or
	// flat variant the product does not have.
	ErrUnknownOption = errors.New("unknown variant option")

	// ErrOptionUnavailable is returned when a request chooses an option with no stock.
	ErrOptionUnavailable = errors.New("variant option is out of stock")

	// ErrOutOfStock blocks add-to-cart when the resolved quote is not in stock.
	ErrOutOfStock = errors.New("selected configuration is out of stock")

	// ErrInsufficientStock is returned when the requested quantity exceeds
	// the stock currently reported for the selection.
	ErrInsufficientStock = errors.New("not enough stock for requested quantity")
)

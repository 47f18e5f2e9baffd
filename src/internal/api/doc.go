// Package api provides the REST API for the product catalogue.
//
// Endpoints:
//   - GET    /api/produtos       list every product
//   - GET    /api/produtos/{id}  fetch one product
//   - POST   /api/produtos       create a product from {nome, preco}
//   - PUT    /api/produtos/{id}  shallow-merge the body onto a product
//   - DELETE /api/produtos/{id}  remove a product
//   - GET    /health             liveness probe
//
// Every request loads the whole data file; mutations save it back inside the
// store's lock. Any request that matches no route, including an unsupported
// method on an API path, is handed to the front-end handler.
//
// # Response Format
//
// Successful responses are the bare product or product array. Errors use
//
//	{
//	  "erro": "Produto não encontrado",
//	  "detalhes": [ /* optional field errors */ ]
//	}
package api

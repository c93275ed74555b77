package catalog

// CategoriesQuery fetches the category list
const CategoriesQuery = `
query {
  categories {
    id
    name
  }
}
`

// ProductsQuery fetches the full product listing, attributes arriving
// as flat (name, value) pairs
const ProductsQuery = `
query {
  products {
    id
    name
    inStock
    description
    category {
      id
      name
    }
    brand
    images {
      url
    }
    price
    attributes {
      name
      value
    }
  }
}
`

// ProductQuery fetches one product by id; the shape omits category and
// brand
const ProductQuery = `
query Product($productId: ID!) {
  product(productId: $productId) {
    id
    name
    inStock
    description
    price
    images {
      url
    }
    attributes {
      name
      value
    }
  }
}
`

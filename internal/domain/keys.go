package domain

// KeyPrefix namespaces every storefront key in the shared store.
const KeyPrefix = "shop:"

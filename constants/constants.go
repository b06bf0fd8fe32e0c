package constants

const MAINNET_API_URL = "https://perps.standx.com"
const AUTH_API_URL = "https://api.standx.com/v1/offchain"
const MARKET_STREAM_URL = "wss://perps.standx.com/ws-stream/v1"
const ORDER_STREAM_URL = "wss://perps.standx.com/ws-api/v1"

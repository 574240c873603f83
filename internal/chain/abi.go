package chain

// ABI fragments for the auctions contract and the two token standards,
// trimmed to the functions and events this service consumes.

const auctionsABIJSON = `[
	{"type":"function","name":"auctionId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"auctions","stateMutability":"view","inputs":[{"name":"","type":"uint256"}],"outputs":[
		{"name":"tokenContract","type":"address"},
		{"name":"tokenId","type":"uint256"},
		{"name":"tokenAmount","type":"uint80"},
		{"name":"tokenStandard","type":"uint16"},
		{"name":"endTimestamp","type":"uint40"},
		{"name":"settled","type":"bool"},
		{"name":"latestBid","type":"uint112"},
		{"name":"latestBidder","type":"address"},
		{"name":"beneficiary","type":"address"}
	]},
	{"type":"function","name":"currentBidPrice","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"Bid","anonymous":false,"inputs":[
		{"name":"auctionId","type":"uint256","indexed":true},
		{"name":"bid","type":"uint256","indexed":true},
		{"name":"from","type":"address","indexed":true}
	]},
	{"type":"event","name":"AuctionInitialised","anonymous":false,"inputs":[
		{"name":"auctionId","type":"uint256","indexed":true},
		{"name":"tokenContract","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true},
		{"name":"tokenERCStandard","type":"uint16","indexed":false},
		{"name":"endTimestamp","type":"uint40","indexed":false},
		{"name":"beneficiary","type":"address","indexed":false}
	]},
	{"type":"event","name":"AuctionSettled","anonymous":false,"inputs":[
		{"name":"auctionId","type":"uint256","indexed":true},
		{"name":"winner","type":"address","indexed":true},
		{"name":"beneficiary","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":false}
	]}
]`

const erc721ABIJSON = `[
	{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]}
]`

const erc1155ABIJSON = `[
	{"type":"function","name":"uri","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"string"}]}
]`

package chain

// Hand-written ABI fragments for the three deployed contracts. Only the
// functions the bot actually calls are listed.

const escrowServiceABI = `[
	{"type":"function","name":"createEscrowNative","stateMutability":"payable","inputs":[{"name":"_freelancer","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"createEscrowToken","stateMutability":"nonpayable","inputs":[{"name":"_freelancer","type":"address"},{"name":"_tokenAddress","type":"address"},{"name":"_amount","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"acceptEscrow","stateMutability":"nonpayable","inputs":[{"name":"_escrowId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"completeWork","stateMutability":"nonpayable","inputs":[{"name":"_escrowId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"releaseFunds","stateMutability":"nonpayable","inputs":[{"name":"_escrowId","type":"uint256"}],"outputs":[]},
	{"type":"event","name":"EscrowCreated","anonymous":false,"inputs":[{"name":"escrowId","type":"uint256","indexed":false},{"name":"client","type":"address","indexed":false},{"name":"freelancer","type":"address","indexed":false},{"name":"amount","type":"uint256","indexed":false},{"name":"tokenAddress","type":"address","indexed":false}]}
]`

const rewardTokenABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const ticketRegistryABI = `[
	{"type":"function","name":"logTicket","stateMutability":"nonpayable","inputs":[{"name":"metadataHash","type":"string"},{"name":"txHash","type":"string"}],"outputs":[]},
	{"type":"function","name":"getTotalTickets","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"TicketLogged","anonymous":false,"inputs":[{"name":"ticketId","type":"uint256","indexed":true},{"name":"client","type":"address","indexed":true},{"name":"metadataHash","type":"string","indexed":false},{"name":"txHash","type":"string","indexed":false},{"name":"createdAt","type":"uint256","indexed":false}]}
]`

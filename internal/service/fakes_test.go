package service

import (
	"github.com/roobux/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) SaveUser(user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(id primitive.ObjectID) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByReferralCode(code string) (*models.User, error) {
	for _, user := range r.users {
		if user.ReferralCode == code {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAllUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SetBalance(id primitive.ObjectID, balance float64) error {
	if user, ok := r.users[id]; ok {
		user.Balance = balance
	}
	return nil
}

func (r *fakeUserRepo) SetBanned(id primitive.ObjectID, banned bool) error {
	if user, ok := r.users[id]; ok {
		user.IsBanned = banned
	}
	return nil
}

func (r *fakeUserRepo) TouchLogin(id primitive.ObjectID, info *models.UserInfo) error {
	if user, ok := r.users[id]; ok && info != nil {
		user.UserInfo = info
	}
	return nil
}

func (r *fakeUserRepo) DeleteUser(id primitive.ObjectID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Collection() *mongo.Collection { return nil }

type fakeContentRepo struct {
	content  *models.SiteContent
	theme    *models.ThemeSettings
	referral *models.ReferralSettings
	status   *models.SiteStatus
}

func (r *fakeContentRepo) GetSiteContent() (*models.SiteContent, error) { return r.content, nil }
func (r *fakeContentRepo) SetSiteContent(content *models.SiteContent) error {
	r.content = content
	return nil
}
func (r *fakeContentRepo) GetThemeSettings() (*models.ThemeSettings, error) { return r.theme, nil }
func (r *fakeContentRepo) SetThemeSettings(theme *models.ThemeSettings) error {
	r.theme = theme
	return nil
}
func (r *fakeContentRepo) GetReferralSettings() (*models.ReferralSettings, error) {
	return r.referral, nil
}
func (r *fakeContentRepo) SetReferralSettings(settings *models.ReferralSettings) error {
	r.referral = settings
	return nil
}
func (r *fakeContentRepo) GetSiteStatus() (*models.SiteStatus, error) { return r.status, nil }
func (r *fakeContentRepo) SetSiteStatus(status *models.SiteStatus) error {
	r.status = status
	return nil
}
func (r *fakeContentRepo) Collection() *mongo.Collection { return nil }

type fakePackageRepo struct {
	packages map[primitive.ObjectID]*models.Package
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: make(map[primitive.ObjectID]*models.Package)}
}

func (r *fakePackageRepo) SavePackage(pkg *models.Package) error {
	if pkg.ID.IsZero() {
		pkg.ID = primitive.NewObjectID()
	}
	r.packages[pkg.ID] = pkg
	return nil
}

func (r *fakePackageRepo) GetPackageByID(id primitive.ObjectID) (*models.Package, error) {
	return r.packages[id], nil
}

func (r *fakePackageRepo) GetVisiblePackages() ([]*models.Package, error) {
	var visible []*models.Package
	for _, pkg := range r.packages {
		if pkg.Visible {
			visible = append(visible, pkg)
		}
	}
	return visible, nil
}

func (r *fakePackageRepo) GetAllPackages() ([]*models.Package, error) {
	var all []*models.Package
	for _, pkg := range r.packages {
		all = append(all, pkg)
	}
	return all, nil
}

func (r *fakePackageRepo) UpdatePackage(id primitive.ObjectID, pkg *models.Package) error {
	pkg.ID = id
	r.packages[id] = pkg
	return nil
}

func (r *fakePackageRepo) DeletePackage(id primitive.ObjectID) error {
	delete(r.packages, id)
	return nil
}

type fakeDepositRepo struct {
	deposits map[primitive.ObjectID]*models.Deposit
}

func newFakeDepositRepo() *fakeDepositRepo {
	return &fakeDepositRepo{deposits: make(map[primitive.ObjectID]*models.Deposit)}
}

func (r *fakeDepositRepo) SaveDeposit(deposit *models.Deposit) error {
	if deposit.ID.IsZero() {
		deposit.ID = primitive.NewObjectID()
	}
	r.deposits[deposit.ID] = deposit
	return nil
}

func (r *fakeDepositRepo) GetDepositByID(id primitive.ObjectID) (*models.Deposit, error) {
	return r.deposits[id], nil
}

func (r *fakeDepositRepo) GetDepositsByUserID(userID primitive.ObjectID) ([]*models.Deposit, error) {
	var out []*models.Deposit
	for _, d := range r.deposits {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDepositRepo) GetAllDeposits() ([]*models.Deposit, error) {
	var out []*models.Deposit
	for _, d := range r.deposits {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDepositRepo) CountByStatus(status models.RequestStatus) (int64, error) {
	var n int64
	for _, d := range r.deposits {
		if d.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeDepositRepo) SumApprovedAmount() (float64, error) {
	var sum float64
	for _, d := range r.deposits {
		if d.Status == models.RequestStatusApproved {
			sum += d.Amount
		}
	}
	return sum, nil
}

func (r *fakeDepositRepo) Collection() *mongo.Collection { return nil }

type fakeWithdrawalRepo struct {
	withdrawals map[primitive.ObjectID]*models.Withdrawal
}

func newFakeWithdrawalRepo() *fakeWithdrawalRepo {
	return &fakeWithdrawalRepo{withdrawals: make(map[primitive.ObjectID]*models.Withdrawal)}
}

func (r *fakeWithdrawalRepo) SaveWithdrawal(withdrawal *models.Withdrawal) error {
	if withdrawal.ID.IsZero() {
		withdrawal.ID = primitive.NewObjectID()
	}
	r.withdrawals[withdrawal.ID] = withdrawal
	return nil
}

func (r *fakeWithdrawalRepo) GetWithdrawalByID(id primitive.ObjectID) (*models.Withdrawal, error) {
	return r.withdrawals[id], nil
}

func (r *fakeWithdrawalRepo) GetWithdrawalsByUserID(userID primitive.ObjectID) ([]*models.Withdrawal, error) {
	var out []*models.Withdrawal
	for _, w := range r.withdrawals {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWithdrawalRepo) GetAllWithdrawals() ([]*models.Withdrawal, error) {
	var out []*models.Withdrawal
	for _, w := range r.withdrawals {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWithdrawalRepo) CountByStatus(status models.RequestStatus) (int64, error) {
	var n int64
	for _, w := range r.withdrawals {
		if w.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeWithdrawalRepo) Collection() *mongo.Collection { return nil }

type fakeChatRepo struct {
	chats    map[primitive.ObjectID]*models.SupportChat
	messages []*models.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: make(map[primitive.ObjectID]*models.SupportChat)}
}

func (r *fakeChatRepo) GetChatByUserID(userID primitive.ObjectID) (*models.SupportChat, error) {
	return r.chats[userID], nil
}

func (r *fakeChatRepo) GetAllChats() ([]*models.SupportChat, error) {
	var out []*models.SupportChat
	for _, chat := range r.chats {
		out = append(out, chat)
	}
	return out, nil
}

func (r *fakeChatRepo) UpsertChat(chat *models.SupportChat, markUnread models.ChatSender) error {
	existing, ok := r.chats[chat.UserID]
	if !ok {
		existing = chat
		r.chats[chat.UserID] = chat
	} else {
		existing.UserEmail = chat.UserEmail
		existing.LastMessage = chat.LastMessage
		existing.LastUpdated = chat.LastUpdated
	}
	if markUnread == models.ChatSenderAdmin {
		existing.AdminHasUnread = true
	} else {
		existing.UserHasUnread = true
	}
	return nil
}

func (r *fakeChatRepo) SetUnread(userID primitive.ObjectID, side models.ChatSender, unread bool) error {
	chat, ok := r.chats[userID]
	if !ok {
		return nil
	}
	if side == models.ChatSenderUser {
		chat.UserHasUnread = unread
	} else {
		chat.AdminHasUnread = unread
	}
	return nil
}

func (r *fakeChatRepo) SaveMessage(message *models.ChatMessage) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) GetMessagesByUserID(userID primitive.ObjectID) ([]*models.ChatMessage, error) {
	var out []*models.ChatMessage
	for _, m := range r.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeBroadcaster struct {
	topics   []string
	payloads []interface{}
}

func (b *fakeBroadcaster) Broadcast(topic string, payload interface{}) {
	b.topics = append(b.topics, topic)
	b.payloads = append(b.payloads, payload)
}

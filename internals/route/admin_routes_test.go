package routes

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitsa_backend/internals/constants"
	blogModel "bitsa_backend/internals/features/content/blogs/model"
	eventModel "bitsa_backend/internals/features/content/events/model"
	galleryModel "bitsa_backend/internals/features/content/gallery/model"
	userModel "bitsa_backend/internals/features/users/user/model"
)

func contactBody(subject string) fiber.Map {
	return fiber.Map{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": subject,
		"message": "Hello BITSA, how do I join?",
	}
}

func TestContact_SubmitAndManage(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	_, bob := ta.user("Bob Otieno", constants.RoleStudent)

	code, body := ta.do(fiber.MethodPost, "/api/contact", "", contactBody("Membership"))
	require.Equal(t, fiber.StatusCreated, code, body)
	assert.Equal(t, "Message sent successfully", body["message"])
	first := dataMap(t, body)["id"].(string)

	code, _ = ta.do(fiber.MethodPost, "/api/contact", "", contactBody("Sponsorship"))
	require.Equal(t, fiber.StatusCreated, code)

	code, body = ta.do(fiber.MethodPost, "/api/contact", "", fiber.Map{"name": "x", "email": "bad", "subject": "", "message": ""})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["errors"], "email")

	code, _ = ta.do(fiber.MethodGet, "/api/contact", bob, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
	code, _ = ta.do(fiber.MethodGet, "/api/contact", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, body = ta.do(fiber.MethodGet, "/api/contact", admin, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, dataList(t, body), 2)
	assert.EqualValues(t, 2, body["unreadCount"])

	code, body = ta.do(fiber.MethodPatch, "/api/contact/"+first+"/read", admin, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, dataMap(t, body)["isRead"])

	_, body = ta.do(fiber.MethodGet, "/api/contact?isRead=false", admin, nil)
	assert.Len(t, dataList(t, body), 1)
	assert.EqualValues(t, 1, body["unreadCount"])
	_, body = ta.do(fiber.MethodGet, "/api/contact?isRead=true", admin, nil)
	assert.Equal(t, []string{first}, ids(dataList(t, body)))

	code, _ = ta.do(fiber.MethodGet, "/api/contact?isRead=maybe", admin, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = ta.do(fiber.MethodDelete, "/api/contact/"+first, admin, nil)
	assert.Equal(t, fiber.StatusOK, code)
	code, _ = ta.do(fiber.MethodPatch, "/api/contact/"+first+"/read", admin, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestContact_RateLimited(t *testing.T) {
	ta := newTestApp(t)

	last := 0
	for i := 0; i < 6; i++ {
		last, _ = ta.do(fiber.MethodPost, "/api/contact", "", contactBody("spam"))
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)
}

func TestUsers_ProfileAccess(t *testing.T) {
	ta := newTestApp(t)
	alice, aliceTok := ta.user("Alice Wanjiru", constants.RoleStudent)
	bob, bobTok := ta.user("Bob Otieno", constants.RoleStudent)
	_, admin := ta.admin()

	code, body := ta.do(fiber.MethodGet, "/api/users/"+alice.ID.String(), bobTok, nil)
	require.Equal(t, fiber.StatusOK, code)
	profile := dataMap(t, body)["user"].(map[string]any)
	assert.Equal(t, alice.FullName, profile["fullName"])
	assert.NotContains(t, profile, "phoneNumber")
	assert.NotContains(t, profile, "password")

	code, _ = ta.do(fiber.MethodGet, "/api/users/"+alice.ID.String(), "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, body = ta.do(fiber.MethodPut, "/api/users/"+alice.ID.String(), bobTok, fiber.Map{"bio": "hacked"})
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "You can only update your own profile", body["message"])

	code, _ = ta.do(fiber.MethodPut, "/api/users/"+uuid.NewString(), bobTok, fiber.Map{"bio": "x"})
	assert.Equal(t, fiber.StatusNotFound, code)

	code, body = ta.do(fiber.MethodPut, "/api/users/"+alice.ID.String(), aliceTok, fiber.Map{
		"fullName":    "Alice W.",
		"phoneNumber": "+254700000000",
		"bio":         "Loves Go",
		"email":       "changed@example.com",
		"role":        constants.RoleAdmin,
	})
	require.Equal(t, fiber.StatusOK, code, body)
	updated := dataMap(t, body)["user"].(map[string]any)
	assert.Equal(t, "Alice W.", updated["fullName"])
	assert.Equal(t, "+254700000000", updated["phoneNumber"])
	assert.Equal(t, alice.Email, updated["email"], "identity fields are not editable")
	assert.Equal(t, constants.RoleStudent, updated["role"])

	code, _ = ta.do(fiber.MethodPut, "/api/users/"+bob.ID.String(), admin, fiber.Map{"bio": "Set by admin"})
	assert.Equal(t, fiber.StatusOK, code)

	// clearing with an empty string
	code, body = ta.do(fiber.MethodPut, "/api/users/"+alice.ID.String(), aliceTok, fiber.Map{"phoneNumber": ""})
	require.Equal(t, fiber.StatusOK, code)
	assert.Nil(t, dataMap(t, body)["user"].(map[string]any)["phoneNumber"])
}

func TestUsers_AdminListing(t *testing.T) {
	ta := newTestApp(t)
	_, studentTok := ta.user("Alice Wanjiru", constants.RoleStudent)
	ta.user("Bob Otieno", constants.RoleStudent)
	_, admin := ta.admin()

	code, _ := ta.do(fiber.MethodGet, "/api/users", studentTok, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	for _, path := range []string{"/api/users", "/api/admin/users"} {
		code, body := ta.do(fiber.MethodGet, path, admin, nil)
		require.Equal(t, fiber.StatusOK, code)
		assert.Len(t, dataList(t, body), 3)
		assert.EqualValues(t, 20, body["pagination"].(map[string]any)["limit"])
	}

	_, body := ta.do(fiber.MethodGet, "/api/admin/users?role=student&search=otieno", admin, nil)
	users := dataList(t, body)
	require.Len(t, users, 1)
	assert.Equal(t, "Bob Otieno", users[0].(map[string]any)["fullName"])

	code, _ = ta.do(fiber.MethodGet, "/api/admin/users?role=teacher", admin, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestUsers_DeleteCascades(t *testing.T) {
	ta := newTestApp(t)
	adminUser, admin := ta.admin()
	alice, aliceTok := ta.user("Alice Wanjiru", constants.RoleStudent)
	_, bobTok := ta.user("Bob Otieno", constants.RoleStudent)

	ta.createBlog(aliceTok, blogBody("Alice's post", "Misc"))
	aliceEvent := ta.createEvent(aliceTok, eventBody("Alice's meetup", time.Now().UTC().AddDate(0, 0, 4)))["id"].(string)
	adminEvent := ta.createEvent(admin, eventBody("Admin summit", time.Now().UTC().AddDate(0, 0, 9)))["id"].(string)

	// registrations both by alice and on alice's event
	code, _ := ta.do(fiber.MethodPost, "/api/events/"+adminEvent+"/register", aliceTok, nil)
	require.Equal(t, fiber.StatusCreated, code)
	code, _ = ta.do(fiber.MethodPost, "/api/events/"+aliceEvent+"/register", bobTok, nil)
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = ta.do(fiber.MethodPost, "/api/gallery", admin, fiber.Map{"imageUrl": "https://cdn.example.com/m.jpg", "eventId": aliceEvent})
	require.Equal(t, fiber.StatusCreated, code)

	code, body := ta.do(fiber.MethodDelete, "/api/users/"+adminUser.ID.String(), admin, nil)
	assert.Equal(t, fiber.StatusBadRequest, code, body)

	code, _ = ta.do(fiber.MethodDelete, "/api/users/"+alice.ID.String(), bobTok, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, body = ta.do(fiber.MethodDelete, "/api/users/"+alice.ID.String(), admin, nil)
	require.Equal(t, fiber.StatusOK, code, body)

	count := func(model any) int64 {
		var n int64
		require.NoError(t, ta.db.Model(model).Count(&n).Error)
		return n
	}
	assert.EqualValues(t, 0, count(&blogModel.BlogPostModel{}))
	assert.EqualValues(t, 1, count(&eventModel.EventModel{}))
	assert.EqualValues(t, 0, count(&eventModel.EventRegistrationModel{}))
	assert.EqualValues(t, 1, count(&galleryModel.GalleryPhotoModel{}))
	assert.EqualValues(t, 2, count(&userModel.UserModel{}))

	code, _ = ta.do(fiber.MethodDelete, "/api/users/"+alice.ID.String(), admin, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestUsers_DeleteOwnAccount(t *testing.T) {
	ta := newTestApp(t)
	_, tok := ta.user("Short Stay", constants.RoleStudent)

	code, body := ta.do(fiber.MethodDelete, "/api/users/account/delete", tok, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Account deleted successfully", body["message"])

	code, _ = ta.do(fiber.MethodGet, "/api/auth/me", tok, nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestAdmin_DashboardStats(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	_, aliceTok := ta.user("Alice Wanjiru", constants.RoleStudent)

	ta.createBlog(admin, blogBody("Published", "News"))
	ta.createBlog(aliceTok, blogBody("Waiting", "News"))
	upcoming := ta.createEvent(aliceTok, eventBody("Student meetup", time.Now().UTC().AddDate(0, 0, 3)))["id"].(string)
	ta.createEvent(admin, eventBody("Old event", time.Now().UTC().AddDate(0, 0, -3)))
	code, _ := ta.do(fiber.MethodPost, "/api/events/"+upcoming+"/register", aliceTok, nil)
	require.Equal(t, fiber.StatusCreated, code)
	code, _ = ta.do(fiber.MethodPost, "/api/contact", "", contactBody("Hi"))
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = ta.do(fiber.MethodGet, "/api/admin/stats", aliceTok, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, body := ta.do(fiber.MethodGet, "/api/admin/stats", admin, nil)
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, "Dashboard statistics fetched successfully", body["message"])
	data := dataMap(t, body)

	stats := data["stats"].(map[string]any)
	assert.EqualValues(t, 2, stats["totalUsers"])
	assert.EqualValues(t, 2, stats["totalBlogs"])
	assert.EqualValues(t, 2, stats["totalEvents"])
	assert.EqualValues(t, 1, stats["totalRegistrations"])
	assert.EqualValues(t, 1, stats["pendingBlogs"])
	assert.EqualValues(t, 1, stats["pendingEvents"])
	assert.EqualValues(t, 1, stats["unreadMessages"])

	assert.Len(t, data["recentMessages"], 1)
	events := data["upcomingEvents"].([]any)
	require.Len(t, events, 1)
	assert.Equal(t, upcoming, events[0].(map[string]any)["id"])
	assert.EqualValues(t, 1, events[0].(map[string]any)["attendeeCount"])
}

func TestStats_Public(t *testing.T) {
	ta := newTestApp(t)
	_, admin := ta.admin()
	_, aliceTok := ta.user("Alice Wanjiru", constants.RoleStudent)
	ta.createBlog(admin, blogBody("Published", "News"))
	ta.createBlog(aliceTok, blogBody("Waiting", "News"))
	ta.createEvent(admin, eventBody("Open day", time.Now().UTC().AddDate(0, 0, 1)))

	code, body := ta.do(fiber.MethodGet, "/api/stats/public", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	data := dataMap(t, body)
	assert.EqualValues(t, 2, data["totalUsers"])
	assert.EqualValues(t, 1, data["totalBlogs"])
	assert.EqualValues(t, 1, data["totalEvents"])
}

func TestStats_PublicCacheDroppedOnWrites(t *testing.T) {
	ta := newTestAppWithCache(t, newMemCache())
	_, admin := ta.admin()

	publicStats := func() map[string]any {
		t.Helper()
		code, body := ta.do(fiber.MethodGet, "/api/stats/public", "", nil)
		require.Equal(t, fiber.StatusOK, code, body)
		return dataMap(t, body)
	}

	st := publicStats()
	assert.EqualValues(t, 1, st["totalUsers"])
	assert.EqualValues(t, 0, st["totalBlogs"])

	// a second read is served from the cache
	again := publicStats()
	assert.Equal(t, st["generatedAt"], again["generatedAt"])

	code, body := ta.do(fiber.MethodPost, "/api/auth/register", "", registerBody("carol@example.com", "S-CAROL"))
	require.Equal(t, fiber.StatusCreated, code, body)
	carol := dataMap(t, body)["token"].(string)
	assert.EqualValues(t, 2, publicStats()["totalUsers"])

	ta.createBlog(admin, blogBody("Published", "News"))
	assert.EqualValues(t, 1, publicStats()["totalBlogs"])

	pending := ta.createEvent(carol, eventBody("Carol's talk", time.Now().UTC().AddDate(0, 0, 3)))
	assert.EqualValues(t, 0, publicStats()["totalEvents"])
	code, _ = ta.do(fiber.MethodPost, "/api/events/"+pending["id"].(string)+"/approve", admin, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.EqualValues(t, 1, publicStats()["totalEvents"])

	// failed writes leave the cached value alone
	cached := publicStats()
	code, _ = ta.do(fiber.MethodPost, "/api/blogs", "", blogBody("anon", "News"))
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, cached["generatedAt"], publicStats()["generatedAt"])

	code, _ = ta.do(fiber.MethodDelete, "/api/users/account/delete", carol, nil)
	require.Equal(t, fiber.StatusOK, code)
	st = publicStats()
	assert.EqualValues(t, 1, st["totalUsers"])
	assert.EqualValues(t, 0, st["totalEvents"])
}

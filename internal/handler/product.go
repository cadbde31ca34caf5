package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
	"github.com/maxviazov/storefront-catalog-service/internal/service"
	"github.com/maxviazov/storefront-catalog-service/pkg/response"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler { return &ProductHandler{svc: svc} }

func (h *ProductHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/products")
	{
		g.GET("", h.list)
		g.GET("/brands", h.brands)
		g.GET("/types", h.types)
		g.GET("/:id", h.getByID)
	}
}

// ProductPage is the listing payload: the requested window plus the total match count.
// PageSize echoes the request; EffectivePageSize is the row limit actually applied,
// which differs only when a non-positive size was asked for.
type ProductPage struct {
	PageIndex         int             `json:"pageIndex"`
	PageSize          int             `json:"pageSize"`
	EffectivePageSize int             `json:"effectivePageSize"`
	Count             int             `json:"count"`
	Items             []model.Product `json:"items"`
}

// queryValue looks a parameter up ignoring key case, so brandId and BrandId both bind.
// The first matching pair in the raw query wins; pairs that fail to unescape are skipped.
func queryValue(c *gin.Context, name string) (string, bool) {
	for _, pair := range strings.Split(c.Request.URL.RawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || !strings.EqualFold(key, name) {
			continue
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			continue
		}
		return val, true
	}
	return "", false
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw, ok := queryValue(c, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	return v, err == nil
}

func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw, ok := queryValue(c, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return v, err == nil
}

// bindProductParams never fails: unparsable values are ignored and the defaults stay.
func bindProductParams(c *gin.Context) model.ProductSpecParams {
	p := model.NewProductSpecParams()
	if v, ok := queryInt64(c, "brandId"); ok {
		p.BrandID = &v
	}
	if v, ok := queryInt64(c, "typeId"); ok {
		p.TypeID = &v
	}
	if raw, ok := queryValue(c, "sort"); ok {
		if s, ok := model.ParseSortOrder(raw); ok {
			p.Sort = &s
		}
	}
	if v, ok := queryInt(c, "pageIndex"); ok {
		p.PageIndex = v
	}
	if v, ok := queryInt(c, "pageSize"); ok {
		p.SetPageSize(v)
	}
	if raw, ok := queryValue(c, "search"); ok && strings.TrimSpace(raw) != "" {
		p.Search = &raw
	}
	return p
}

func (h *ProductHandler) list(c *gin.Context) {
	params := bindProductParams(c)
	res, err := h.svc.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	items := res.Items
	if items == nil {
		items = []model.Product{}
	}
	response.WriteData(c, http.StatusOK, ProductPage{
		PageIndex:         params.PageIndex,
		PageSize:          params.PageSize(),
		EffectivePageSize: repository.EffectiveLimit(params.PageSize()),
		Count:             res.Total,
		Items:             items,
	})
}

func (h *ProductHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	product, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, product)
}

func (h *ProductHandler) brands(c *gin.Context) {
	out, err := h.svc.ListBrands(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *ProductHandler) types(c *gin.Context) {
	out, err := h.svc.ListTypes(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

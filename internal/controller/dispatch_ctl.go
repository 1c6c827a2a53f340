package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dispatch_admin/internal/api/dto"
	"dispatch_admin/internal/model"
	"dispatch_admin/internal/repository"
	"dispatch_admin/internal/repository/query"
	"dispatch_admin/internal/service"
	"dispatch_admin/internal/sqlerr"
)

type DispatchController struct {
	dispatchSvc *service.DispatchService
}

func NewDispatchController(dispatchSvc *service.DispatchService) *DispatchController {
	return &DispatchController{
		dispatchSvc: dispatchSvc,
	}
}

// ==================== 配送规则 ====================

// ListDispatches 配送规则列表
// @Summary 配送规则列表
// @Description 按名称/描述模糊搜索，start 和 limit 同时提供才分页
// @Tags Dispatch (配送规则)
// @Security BearerAuth
// @Produce json
// @Param filter query string false "搜索文本"
// @Param sort query string false "排序 JSON"
// @Param start query int false "偏移"
// @Param limit query int false "条数"
// @Success 200 {object} dto.ListResp[model.Dispatch]
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/v1/dispatches [get]
func (c *DispatchController) ListDispatches(ctx *gin.Context) {
	params, ok := bindDispatchListParams(ctx)
	if !ok {
		return
	}

	resp, err := c.dispatchSvc.ListDispatches(ctx.Request.Context(), params)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListDispatchSummaries 配送规则基础信息列表
// @Summary 配送规则基础信息列表
// @Description 不加载关联，start/limit 各自独立生效
// @Tags Dispatch (配送规则)
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListResp[model.Dispatch]
// @Router /api/v1/dispatch-summaries [get]
func (c *DispatchController) ListDispatchSummaries(ctx *gin.Context) {
	params, ok := bindDispatchListParams(ctx)
	if !ok {
		return
	}

	resp, err := c.dispatchSvc.ListDispatchSummaries(ctx.Request.Context(), params)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListShippingCosts 带关联的配送规则列表
// @Summary 带关联的配送规则列表
// @Description 包含国家、分类、节假日、支付方式和扩展属性
// @Tags Dispatch (配送规则)
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListResp[model.Dispatch]
// @Router /api/v1/shipping-costs [get]
func (c *DispatchController) ListShippingCosts(ctx *gin.Context) {
	params, ok := bindDispatchListParams(ctx)
	if !ok {
		return
	}

	resp, err := c.dispatchSvc.ListShippingCosts(ctx.Request.Context(), repository.ShippingCostsParams{
		Search: params.Search,
		Order:  params.Order,
		Page:   params.Page,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetShippingCosts 配送规则详情
// @Summary 配送规则详情
// @Tags Dispatch (配送规则)
// @Security BearerAuth
// @Produce json
// @Param id path int true "配送规则ID"
// @Success 200 {object} model.Dispatch
// @Failure 404 {object} map[string]string "不存在"
// @Router /api/v1/shipping-costs/{id} [get]
func (c *DispatchController) GetShippingCosts(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的配送规则ID"})
		return
	}

	dispatch, err := c.dispatchSvc.GetShippingCosts(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dispatch)
}

// ==================== 运费矩阵 ====================

// GetCostsMatrix 运费矩阵
// @Summary 运费矩阵
// @Description 整张返回并按 from 升序，filter/start/limit 不生效
// @Tags CostsMatrix (运费矩阵)
// @Security BearerAuth
// @Produce json
// @Param dispatchId path int true "配送规则ID"
// @Success 200 {object} dto.ListResp[model.ShippingCost]
// @Router /api/v1/costs-matrix/{dispatchId} [get]
func (c *DispatchController) GetCostsMatrix(ctx *gin.Context) {
	dispatchID, err := strconv.ParseInt(ctx.Param("dispatchId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的配送规则ID"})
		return
	}

	var req dto.MatrixReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := c.dispatchSvc.GetCostsMatrix(ctx.Request.Context(), repository.MatrixParams{
		DispatchID: &dispatchID,
		Filter:     req.Filter,
		Page:       query.Page{Offset: req.Start, Limit: req.Limit},
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	if rows == nil {
		rows = []model.ShippingCost{}
	}
	ctx.JSON(http.StatusOK, dto.ListResp[model.ShippingCost]{Data: rows, Total: int64(len(rows))})
}

// PurgeCostsMatrix 清空运费矩阵
// @Summary 清空运费矩阵
// @Description 立即物理删除该配送规则的全部运费阶梯，需要 admin 角色
// @Tags CostsMatrix (运费矩阵)
// @Security BearerAuth
// @Produce json
// @Param dispatchId path int true "配送规则ID"
// @Success 200 {object} dto.PurgeResp
// @Failure 429 {object} map[string]string "冷却中"
// @Router /api/v1/costs-matrix/{dispatchId} [delete]
func (c *DispatchController) PurgeCostsMatrix(ctx *gin.Context) {
	dispatchID, err := strconv.ParseInt(ctx.Param("dispatchId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的配送规则ID"})
		return
	}

	resp, err := c.dispatchSvc.PurgeCostsMatrix(ctx.Request.Context(), dispatchID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ==================== 基础数据 ====================

// ListPayments 支付方式列表
// @Summary 支付方式列表
// @Description filter 支持 usedIds（排除）
// @Tags MasterData (基础数据)
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListResp[model.Payment]
// @Router /api/v1/payments [get]
func (c *DispatchController) ListPayments(ctx *gin.Context) {
	req, ok := bindListQuery(ctx)
	if !ok {
		return
	}
	filters, order, ok := parseFilterAndOrder(ctx, req)
	if !ok {
		return
	}

	resp, err := c.dispatchSvc.ListPayments(ctx.Request.Context(), filters, order, req.Page())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListCountries 国家列表
// @Summary 国家列表
// @Description filter 支持 usedIds（排除）和 onlyIds（限定）
// @Tags MasterData (基础数据)
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListResp[model.Country]
// @Router /api/v1/countries [get]
func (c *DispatchController) ListCountries(ctx *gin.Context) {
	req, ok := bindListQuery(ctx)
	if !ok {
		return
	}
	filters, order, ok := parseFilterAndOrder(ctx, req)
	if !ok {
		return
	}

	resp, err := c.dispatchSvc.ListCountries(ctx.Request.Context(), filters, order, req.Page())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListHolidays 节假日列表
// @Summary 节假日列表
// @Tags MasterData (基础数据)
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListResp[model.Holiday]
// @Router /api/v1/holidays [get]
func (c *DispatchController) ListHolidays(ctx *gin.Context) {
	req, ok := bindListQuery(ctx)
	if !ok {
		return
	}
	filters, order, ok := parseFilterAndOrder(ctx, req)
	if !ok {
		return
	}

	resp, err := c.dispatchSvc.ListHolidays(ctx.Request.Context(), filters, order, req.Page())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ==================== 维护 ====================

// ListOrphanedDispatches 限定店铺已删除的配送规则
// @Summary 限定店铺已删除的配送规则
// @Tags Maintenance (维护)
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.OrphanReportResp
// @Router /api/v1/maintenance/orphaned-dispatches [get]
func (c *DispatchController) ListOrphanedDispatches(ctx *gin.Context) {
	resp, err := c.dispatchSvc.FindDispatchesWithDeletedShops(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ==================== 辅助函数 ====================

func bindListQuery(ctx *gin.Context) (dto.ListQueryReq, bool) {
	var req dto.ListQueryReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, false
	}
	return req, true
}

func bindDispatchListParams(ctx *gin.Context) (repository.DispatchListParams, bool) {
	req, ok := bindListQuery(ctx)
	if !ok {
		return repository.DispatchListParams{}, false
	}

	order, err := req.OrderParams()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return repository.DispatchListParams{}, false
	}

	return repository.DispatchListParams{
		Search: req.SearchText(),
		Order:  order,
		Page:   req.Page(),
	}, true
}

func parseFilterAndOrder(ctx *gin.Context, req dto.ListQueryReq) ([]query.FilterParam, []query.OrderParam, bool) {
	filters, err := req.FilterParams()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	order, err := req.OrderParams()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return filters, order, true
}

// retryAfterSeconds 事务冲突时建议的重试间隔
const retryAfterSeconds = "1"

// respondError 业务错误映射为状态码
func respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	switch {
	case errors.Is(err, service.ErrDispatchNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDispatchID):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		status := sqlerr.HTTPStatus(err)
		msg := err.Error()
		switch {
		case status == http.StatusInternalServerError:
			msg = "服务器内部错误"
		case sqlerr.Retryable(err):
			// 事务冲突，客户端稍后重试即可
			ctx.Header("Retry-After", retryAfterSeconds)
		}
		ctx.JSON(status, gin.H{"error": msg})
	}
}

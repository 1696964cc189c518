// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: metreur/v1/metreur.proto

package metreurpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SurveyService_ExtractSurvey_FullMethodName = "/metreur.v1.SurveyService/ExtractSurvey"
	SurveyService_GetSurvey_FullMethodName     = "/metreur.v1.SurveyService/GetSurvey"
	SurveyService_ListSurveys_FullMethodName   = "/metreur.v1.SurveyService/ListSurveys"
)

// SurveyServiceClient is the client API for SurveyService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SurveyService ingests scanned metreur sheets and exposes the resulting surveys.
type SurveyServiceClient interface {
	ExtractSurvey(ctx context.Context, in *ExtractSurveyRequest, opts ...grpc.CallOption) (*ExtractSurveyResponse, error)
	GetSurvey(ctx context.Context, in *GetSurveyRequest, opts ...grpc.CallOption) (*GetSurveyResponse, error)
	ListSurveys(ctx context.Context, in *ListSurveysRequest, opts ...grpc.CallOption) (*ListSurveysResponse, error)
}

type surveyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSurveyServiceClient(cc grpc.ClientConnInterface) SurveyServiceClient {
	return &surveyServiceClient{cc}
}

func (c *surveyServiceClient) ExtractSurvey(ctx context.Context, in *ExtractSurveyRequest, opts ...grpc.CallOption) (*ExtractSurveyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractSurveyResponse)
	err := c.cc.Invoke(ctx, SurveyService_ExtractSurvey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *surveyServiceClient) GetSurvey(ctx context.Context, in *GetSurveyRequest, opts ...grpc.CallOption) (*GetSurveyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSurveyResponse)
	err := c.cc.Invoke(ctx, SurveyService_GetSurvey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *surveyServiceClient) ListSurveys(ctx context.Context, in *ListSurveysRequest, opts ...grpc.CallOption) (*ListSurveysResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSurveysResponse)
	err := c.cc.Invoke(ctx, SurveyService_ListSurveys_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SurveyServiceServer is the server API for SurveyService service.
// All implementations must embed UnimplementedSurveyServiceServer
// for forward compatibility.
//
// SurveyService ingests scanned metreur sheets and exposes the resulting surveys.
type SurveyServiceServer interface {
	ExtractSurvey(context.Context, *ExtractSurveyRequest) (*ExtractSurveyResponse, error)
	GetSurvey(context.Context, *GetSurveyRequest) (*GetSurveyResponse, error)
	ListSurveys(context.Context, *ListSurveysRequest) (*ListSurveysResponse, error)
	mustEmbedUnimplementedSurveyServiceServer()
}

// UnimplementedSurveyServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSurveyServiceServer struct{}

func (UnimplementedSurveyServiceServer) ExtractSurvey(context.Context, *ExtractSurveyRequest) (*ExtractSurveyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractSurvey not implemented")
}
func (UnimplementedSurveyServiceServer) GetSurvey(context.Context, *GetSurveyRequest) (*GetSurveyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSurvey not implemented")
}
func (UnimplementedSurveyServiceServer) ListSurveys(context.Context, *ListSurveysRequest) (*ListSurveysResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSurveys not implemented")
}
func (UnimplementedSurveyServiceServer) mustEmbedUnimplementedSurveyServiceServer() {}
func (UnimplementedSurveyServiceServer) testEmbeddedByValue()                       {}

// UnsafeSurveyServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SurveyServiceServer will
// result in compilation errors.
type UnsafeSurveyServiceServer interface {
	mustEmbedUnimplementedSurveyServiceServer()
}

func RegisterSurveyServiceServer(s grpc.ServiceRegistrar, srv SurveyServiceServer) {
	// If the following call pancis, it indicates UnimplementedSurveyServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SurveyService_ServiceDesc, srv)
}

func _SurveyService_ExtractSurvey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractSurveyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SurveyServiceServer).ExtractSurvey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SurveyService_ExtractSurvey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SurveyServiceServer).ExtractSurvey(ctx, req.(*ExtractSurveyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SurveyService_GetSurvey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSurveyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SurveyServiceServer).GetSurvey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SurveyService_GetSurvey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SurveyServiceServer).GetSurvey(ctx, req.(*GetSurveyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SurveyService_ListSurveys_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSurveysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SurveyServiceServer).ListSurveys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SurveyService_ListSurveys_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SurveyServiceServer).ListSurveys(ctx, req.(*ListSurveysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SurveyService_ServiceDesc is the grpc.ServiceDesc for SurveyService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SurveyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "metreur.v1.SurveyService",
	HandlerType: (*SurveyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractSurvey",
			Handler:    _SurveyService_ExtractSurvey_Handler,
		},
		{
			MethodName: "GetSurvey",
			Handler:    _SurveyService_GetSurvey_Handler,
		},
		{
			MethodName: "ListSurveys",
			Handler:    _SurveyService_ListSurveys_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "metreur/v1/metreur.proto",
}

const (
	FixtureService_ListFixtures_FullMethodName    = "/metreur.v1.FixtureService/ListFixtures"
	FixtureService_UpdateFixture_FullMethodName   = "/metreur.v1.FixtureService/UpdateFixture"
	FixtureService_ValidateFixture_FullMethodName = "/metreur.v1.FixtureService/ValidateFixture"
)

// FixtureServiceClient is the client API for FixtureService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// FixtureService tracks operator edits and validation per fixture record.
type FixtureServiceClient interface {
	ListFixtures(ctx context.Context, in *ListFixturesRequest, opts ...grpc.CallOption) (*ListFixturesResponse, error)
	UpdateFixture(ctx context.Context, in *UpdateFixtureRequest, opts ...grpc.CallOption) (*UpdateFixtureResponse, error)
	ValidateFixture(ctx context.Context, in *ValidateFixtureRequest, opts ...grpc.CallOption) (*ValidateFixtureResponse, error)
}

type fixtureServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFixtureServiceClient(cc grpc.ClientConnInterface) FixtureServiceClient {
	return &fixtureServiceClient{cc}
}

func (c *fixtureServiceClient) ListFixtures(ctx context.Context, in *ListFixturesRequest, opts ...grpc.CallOption) (*ListFixturesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFixturesResponse)
	err := c.cc.Invoke(ctx, FixtureService_ListFixtures_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fixtureServiceClient) UpdateFixture(ctx context.Context, in *UpdateFixtureRequest, opts ...grpc.CallOption) (*UpdateFixtureResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateFixtureResponse)
	err := c.cc.Invoke(ctx, FixtureService_UpdateFixture_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fixtureServiceClient) ValidateFixture(ctx context.Context, in *ValidateFixtureRequest, opts ...grpc.CallOption) (*ValidateFixtureResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ValidateFixtureResponse)
	err := c.cc.Invoke(ctx, FixtureService_ValidateFixture_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FixtureServiceServer is the server API for FixtureService service.
// All implementations must embed UnimplementedFixtureServiceServer
// for forward compatibility.
//
// FixtureService tracks operator edits and validation per fixture record.
type FixtureServiceServer interface {
	ListFixtures(context.Context, *ListFixturesRequest) (*ListFixturesResponse, error)
	UpdateFixture(context.Context, *UpdateFixtureRequest) (*UpdateFixtureResponse, error)
	ValidateFixture(context.Context, *ValidateFixtureRequest) (*ValidateFixtureResponse, error)
	mustEmbedUnimplementedFixtureServiceServer()
}

// UnimplementedFixtureServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFixtureServiceServer struct{}

func (UnimplementedFixtureServiceServer) ListFixtures(context.Context, *ListFixturesRequest) (*ListFixturesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFixtures not implemented")
}
func (UnimplementedFixtureServiceServer) UpdateFixture(context.Context, *UpdateFixtureRequest) (*UpdateFixtureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateFixture not implemented")
}
func (UnimplementedFixtureServiceServer) ValidateFixture(context.Context, *ValidateFixtureRequest) (*ValidateFixtureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateFixture not implemented")
}
func (UnimplementedFixtureServiceServer) mustEmbedUnimplementedFixtureServiceServer() {}
func (UnimplementedFixtureServiceServer) testEmbeddedByValue()                        {}

// UnsafeFixtureServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FixtureServiceServer will
// result in compilation errors.
type UnsafeFixtureServiceServer interface {
	mustEmbedUnimplementedFixtureServiceServer()
}

func RegisterFixtureServiceServer(s grpc.ServiceRegistrar, srv FixtureServiceServer) {
	// If the following call pancis, it indicates UnimplementedFixtureServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FixtureService_ServiceDesc, srv)
}

func _FixtureService_ListFixtures_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFixturesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FixtureServiceServer).ListFixtures(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FixtureService_ListFixtures_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FixtureServiceServer).ListFixtures(ctx, req.(*ListFixturesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FixtureService_UpdateFixture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateFixtureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FixtureServiceServer).UpdateFixture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FixtureService_UpdateFixture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FixtureServiceServer).UpdateFixture(ctx, req.(*UpdateFixtureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FixtureService_ValidateFixture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateFixtureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FixtureServiceServer).ValidateFixture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FixtureService_ValidateFixture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FixtureServiceServer).ValidateFixture(ctx, req.(*ValidateFixtureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FixtureService_ServiceDesc is the grpc.ServiceDesc for FixtureService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FixtureService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "metreur.v1.FixtureService",
	HandlerType: (*FixtureServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListFixtures",
			Handler:    _FixtureService_ListFixtures_Handler,
		},
		{
			MethodName: "UpdateFixture",
			Handler:    _FixtureService_UpdateFixture_Handler,
		},
		{
			MethodName: "ValidateFixture",
			Handler:    _FixtureService_ValidateFixture_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "metreur/v1/metreur.proto",
}

const (
	DocumentService_PlanDocuments_FullMethodName = "/metreur.v1.DocumentService/PlanDocuments"
	DocumentService_ExportSurvey_FullMethodName  = "/metreur.v1.DocumentService/ExportSurvey"
)

// DocumentServiceClient is the client API for DocumentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocumentService plans paginated output documents from validated records.
type DocumentServiceClient interface {
	PlanDocuments(ctx context.Context, in *PlanDocumentsRequest, opts ...grpc.CallOption) (*PlanDocumentsResponse, error)
	ExportSurvey(ctx context.Context, in *ExportSurveyRequest, opts ...grpc.CallOption) (*ExportSurveyResponse, error)
}

type documentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentServiceClient(cc grpc.ClientConnInterface) DocumentServiceClient {
	return &documentServiceClient{cc}
}

func (c *documentServiceClient) PlanDocuments(ctx context.Context, in *PlanDocumentsRequest, opts ...grpc.CallOption) (*PlanDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PlanDocumentsResponse)
	err := c.cc.Invoke(ctx, DocumentService_PlanDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentServiceClient) ExportSurvey(ctx context.Context, in *ExportSurveyRequest, opts ...grpc.CallOption) (*ExportSurveyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportSurveyResponse)
	err := c.cc.Invoke(ctx, DocumentService_ExportSurvey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentServiceServer is the server API for DocumentService service.
// All implementations must embed UnimplementedDocumentServiceServer
// for forward compatibility.
//
// DocumentService plans paginated output documents from validated records.
type DocumentServiceServer interface {
	PlanDocuments(context.Context, *PlanDocumentsRequest) (*PlanDocumentsResponse, error)
	ExportSurvey(context.Context, *ExportSurveyRequest) (*ExportSurveyResponse, error)
	mustEmbedUnimplementedDocumentServiceServer()
}

// UnimplementedDocumentServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentServiceServer struct{}

func (UnimplementedDocumentServiceServer) PlanDocuments(context.Context, *PlanDocumentsRequest) (*PlanDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlanDocuments not implemented")
}
func (UnimplementedDocumentServiceServer) ExportSurvey(context.Context, *ExportSurveyRequest) (*ExportSurveyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportSurvey not implemented")
}
func (UnimplementedDocumentServiceServer) mustEmbedUnimplementedDocumentServiceServer() {}
func (UnimplementedDocumentServiceServer) testEmbeddedByValue()                         {}

// UnsafeDocumentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentServiceServer will
// result in compilation errors.
type UnsafeDocumentServiceServer interface {
	mustEmbedUnimplementedDocumentServiceServer()
}

func RegisterDocumentServiceServer(s grpc.ServiceRegistrar, srv DocumentServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentService_ServiceDesc, srv)
}

func _DocumentService_PlanDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlanDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentServiceServer).PlanDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentService_PlanDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentServiceServer).PlanDocuments(ctx, req.(*PlanDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentService_ExportSurvey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportSurveyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentServiceServer).ExportSurvey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentService_ExportSurvey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentServiceServer).ExportSurvey(ctx, req.(*ExportSurveyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentService_ServiceDesc is the grpc.ServiceDesc for DocumentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "metreur.v1.DocumentService",
	HandlerType: (*DocumentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PlanDocuments",
			Handler:    _DocumentService_PlanDocuments_Handler,
		},
		{
			MethodName: "ExportSurvey",
			Handler:    _DocumentService_ExportSurvey_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "metreur/v1/metreur.proto",
}
